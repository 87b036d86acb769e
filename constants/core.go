package constants

import "time"

// Event Loop & Scheduler Timing
const (
	// UITickInterval is the period of the display refresh / timeout check tick
	UITickInterval = 100 * time.Millisecond

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// InputChannelSize buffers terminal events between poller and loop
	InputChannelSize = 256
)
