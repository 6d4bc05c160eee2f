package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval of the terminal loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFrameRate is the frame rate used when config omits tuning.frameRate
	DefaultFrameRate = 60

	// MaxFrameDelta caps a single tick so a stalled terminal does not teleport players
	MaxFrameDelta = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
