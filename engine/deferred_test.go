package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeferred_FiresOnceOnExpiry(t *testing.T) {
	var d Deferred
	assert.False(t, d.Tick(time.Second), "disarmed never fires")

	d.Schedule(3 * time.Second)
	assert.True(t, d.Armed())
	assert.False(t, d.Tick(time.Second))
	assert.False(t, d.Tick(time.Second))
	assert.Equal(t, time.Second, d.Remaining())
	assert.True(t, d.Tick(time.Second))
	assert.False(t, d.Armed())
	assert.False(t, d.Tick(time.Second))
}

func TestDeferred_Cancel(t *testing.T) {
	var d Deferred
	d.Schedule(time.Second)
	d.Cancel()
	assert.Zero(t, d.Remaining())
	assert.False(t, d.Tick(2*time.Second))
}

func TestDeferred_RescheduleReplaces(t *testing.T) {
	var d Deferred
	d.Schedule(time.Second)
	d.Tick(900 * time.Millisecond)
	d.Schedule(time.Second)
	assert.False(t, d.Tick(500*time.Millisecond))
	assert.True(t, d.Tick(500*time.Millisecond))
}
