package engine

import (
	"time"

	"github.com/lixenwraith/touchplay/engine/fsm"
)

// Step runs n updates of dt
func Step(s *Session, dt time.Duration, n int) {
	for range n {
		s.Update(dt)
	}
}

// StepUntil updates until cond holds, at most limit times
// Returns whether cond held
func StepUntil(s *Session, dt time.Duration, limit int, cond func(*Session) bool) bool {
	for range limit {
		if cond(s) {
			return true
		}
		s.Update(dt)
	}
	return cond(s)
}

// InState returns a StepUntil condition matching the active state
func InState(id fsm.StateID) func(*Session) bool {
	return func(s *Session) bool { return s.State() == id }
}
