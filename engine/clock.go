package engine

import "time"

// Clock supplies wall time for attempt timestamps and frame deltas
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock, monotonic reading included
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now()
}
