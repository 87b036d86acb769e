package engine

import (
	"time"
)

// manualTimer is one pending callback of a ManualScheduler
type manualTimer struct {
	id       TimerID
	due      time.Time
	interval time.Duration // Zero for single-shot timers
	fn       func()
}

// ManualScheduler is a deterministic Scheduler over a MockTimeProvider
// Time only moves through Advance; due timers fire in (deadline, arming order)
// Not safe for concurrent use, intended for tests and headless replays
type ManualScheduler struct {
	clock  *MockTimeProvider
	timers map[TimerID]*manualTimer
	nextID TimerID
	fired  int
}

// NewManualScheduler creates a scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		clock:  NewMockTimeProvider(start),
		timers: make(map[TimerID]*manualTimer),
	}
}

// Clock exposes the underlying mock time provider
func (s *ManualScheduler) Clock() *MockTimeProvider {
	return s.clock
}

// Now returns the current mocked time
func (s *ManualScheduler) Now() time.Time {
	return s.clock.Now()
}

// ScheduleOnce arms a single-shot timer
func (s *ManualScheduler) ScheduleOnce(d time.Duration, fn func()) TimerID {
	return s.add(d, 0, fn)
}

// ScheduleRepeating arms a periodic timer, periods under 1ms are raised to 1ms
func (s *ManualScheduler) ScheduleRepeating(d time.Duration, fn func()) TimerID {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *ManualScheduler) add(d, interval time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.timers[s.nextID] = &manualTimer{
		id:       s.nextID,
		due:      s.clock.Now().Add(d),
		interval: interval,
		fn:       fn,
	}
	return s.nextID
}

// Cancel removes a timer, unknown ids are ignored
func (s *ManualScheduler) Cancel(id TimerID) {
	delete(s.timers, id)
}

// Advance moves time forward by d, firing every timer that falls due on the way
// Callbacks may arm or cancel timers; newly armed timers due within the window also fire
// Returns the number of callbacks invoked
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.clock.Now().Add(d)
	count := 0

	for {
		next := s.earliestBy(target)
		if next == nil {
			break
		}

		s.clock.SetTime(next.due)
		if next.interval == 0 {
			delete(s.timers, next.id)
		} else {
			next.due = next.due.Add(next.interval)
		}

		next.fn()
		count++
	}

	s.clock.SetTime(target)
	s.fired += count
	return count
}

// earliestBy returns the first timer due at or before limit, ties broken by id
func (s *ManualScheduler) earliestBy(limit time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range s.timers {
		if t.due.After(limit) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Pending returns the number of live timers
func (s *ManualScheduler) Pending() int {
	return len(s.timers)
}

// Fired returns the total number of callbacks invoked so far
func (s *ManualScheduler) Fired() int {
	return s.fired
}

// Armed reports whether id is live and returns its next deadline and period
func (s *ManualScheduler) Armed(id TimerID) (due time.Time, interval time.Duration, ok bool) {
	t, ok := s.timers[id]
	if !ok {
		return time.Time{}, 0, false
	}
	return t.due, t.interval, true
}

// TimeUntil returns how long until id fires, false if id is not live
func (s *ManualScheduler) TimeUntil(id TimerID) (time.Duration, bool) {
	due, _, ok := s.Armed(id)
	if !ok {
		return 0, false
	}
	return due.Sub(s.clock.Now()), true
}
