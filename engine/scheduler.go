package engine

import "time"

// TimerID identifies a scheduled callback; zero is never issued
type TimerID uint64

// Scheduler is the single clock and timer service the round engine runs on
// Implementations deliver every callback on one goroutine so the engine needs no locking
type Scheduler interface {
	// Now returns the scheduler's monotonic time
	Now() time.Time

	// ScheduleOnce runs fn once after d
	ScheduleOnce(d time.Duration, fn func()) TimerID

	// ScheduleRepeating runs fn every d until cancelled
	ScheduleRepeating(d time.Duration, fn func()) TimerID

	// Cancel stops a timer; once it returns fn is never invoked again
	// Unknown or already finished ids are ignored
	Cancel(id TimerID)
}
