package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the fixed physics/judgment tick (50 Hz)
	GameUpdateInterval = 20 * time.Millisecond

	// MaxTickCatchUp bounds how far the scheduler may fall behind before it resyncs the deadline
	MaxTickCatchUp = 2
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
