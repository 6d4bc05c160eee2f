package engine

import (
	"time"

	"github.com/lixenwraith/touchplay/parameter"
)

// Loop turns wall-clock frames into session updates
// The host owns the ticker and calls Tick once per frame
type Loop struct {
	session  *Session
	clock    Clock
	interval time.Duration
	last     time.Time
	frames   uint64
	paused   bool
}

// NewLoop creates a loop at frameRate frames per second
func NewLoop(session *Session, clock Clock, frameRate int) *Loop {
	if frameRate <= 0 {
		frameRate = parameter.DefaultFrameRate
	}
	return &Loop{
		session:  session,
		clock:    clock,
		interval: time.Second / time.Duration(frameRate),
		last:     clock.Now(),
	}
}

// Interval returns the target frame interval
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Tick updates the session by the wall time since the previous tick
// Long stalls are clamped so a suspended terminal does not teleport players
func (l *Loop) Tick() time.Duration {
	now := l.clock.Now()
	dt := now.Sub(l.last)
	l.last = now

	if l.paused {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	l.session.Update(dt)
	l.frames++
	return dt
}

// SetPaused stops or restarts game time; time spent paused is discarded
func (l *Loop) SetPaused(paused bool) {
	l.paused = paused
	l.last = l.clock.Now()
}

// Paused reports whether the loop is paused
func (l *Loop) Paused() bool {
	return l.paused
}

// Frames returns the number of updates run
func (l *Loop) Frames() uint64 {
	return l.frames
}
