package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/touchplay/parameter"
)

func TestLoop_TickUsesWallDelta(t *testing.T) {
	clock := newMockClock(epoch)
	s, err := NewSession(SessionConfig{Clock: clock})
	require.NoError(t, err)
	l := NewLoop(s, clock, 50)
	assert.Equal(t, 20*time.Millisecond, l.Interval())

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, l.Tick())
	assert.Equal(t, 16*time.Millisecond, s.Snapshot().Elapsed)

	clock.Advance(5 * time.Second)
	assert.Equal(t, parameter.MaxFrameDelta, l.Tick(), "stalls are clamped")
	assert.Equal(t, uint64(2), l.Frames())
}

func TestLoop_PauseDiscardsTime(t *testing.T) {
	clock := newMockClock(epoch)
	s, err := NewSession(SessionConfig{Clock: clock})
	require.NoError(t, err)
	l := NewLoop(s, clock, 0)
	assert.Equal(t, time.Second/parameter.DefaultFrameRate, l.Interval())

	l.SetPaused(true)
	clock.Advance(50 * time.Millisecond)
	assert.Zero(t, l.Tick())
	assert.True(t, l.Paused())

	clock.Advance(time.Minute)
	l.SetPaused(false)
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, l.Tick())
	assert.Equal(t, int64(1), s.Snapshot().Frame)
}
