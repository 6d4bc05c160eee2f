package input

import (
	"github.com/lixenwraith/touchplay/engine"
	"github.com/lixenwraith/touchplay/engine/fsm"
)

// InputMode mirrors session states for parser context
type InputMode uint8

const (
	ModeMenu InputMode = iota
	ModeDesigner
	ModePlayback
	ModeDecision
	ModeFeedback
)

// ModeFor maps a session state to the parser mode
func ModeFor(state fsm.StateID) InputMode {
	switch state {
	case engine.StatePlayDesigner:
		return ModeDesigner
	case engine.StatePlayingMove:
		return ModePlayback
	case engine.StateDecisionPoint:
		return ModeDecision
	case engine.StateFeedback:
		return ModeFeedback
	default:
		return ModeMenu
	}
}
