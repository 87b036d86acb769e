package events

import (
	"time"
)

// EventType represents the type of loop event
type EventType int

const (
	// EventNone is the zero value and is never pushed
	EventNone EventType = iota

	// EventTimerFired signals that a scheduled timer reached its deadline
	// Trigger: ClockScheduler timer goroutine
	// Consumer: ClockScheduler.Dispatch | Payload: Timer
	EventTimerFired

	// EventWake nudges the consumer without carrying work
	// Trigger: ClockScheduler.Close | Payload: nil
	EventWake
)

// String returns a short event name for logs
func (t EventType) String() string {
	switch t {
	case EventTimerFired:
		return "timer_fired"
	case EventWake:
		return "wake"
	default:
		return "none"
	}
}

// LoopEvent represents a single event handed from a producer goroutine to the loop
type LoopEvent struct {
	Type      EventType
	Timer     uint64 // Scheduler timer id for EventTimerFired
	Timestamp time.Time
}
