package engine

import "time"

// Deferred is a one-shot countdown in game time
// It only advances through Tick, so it pauses with the session and never outlives it
type Deferred struct {
	remaining time.Duration
	armed     bool
}

// Schedule arms the countdown, replacing any previous one
func (d *Deferred) Schedule(after time.Duration) {
	d.remaining = after
	d.armed = true
}

// Cancel disarms the countdown
func (d *Deferred) Cancel() {
	d.remaining = 0
	d.armed = false
}

// Armed reports whether a countdown is running
func (d *Deferred) Armed() bool {
	return d.armed
}

// Remaining returns the time left, zero when disarmed
func (d *Deferred) Remaining() time.Duration {
	if !d.armed {
		return 0
	}
	return d.remaining
}

// Tick advances the countdown and reports true exactly once, on expiry
func (d *Deferred) Tick(dt time.Duration) bool {
	if !d.armed {
		return false
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	d.Cancel()
	return true
}
