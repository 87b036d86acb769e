package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/whac-a-mole/core"
	"github.com/lixenwraith/whac-a-mole/events"
)

// clockTimer tracks one live real-time timer
type clockTimer struct {
	fn    func()
	once  bool
	timer *time.Timer   // Single-shot timers
	stop  chan struct{} // Repeating timers, closed on cancel
}

// ClockScheduler is the real-time Scheduler
// Timer goroutines never run callbacks: they push EventTimerFired into an MPSC queue and
// the owning event loop runs them through Dispatch, serializing every engine mutation
// A timer cancelled while its fire event is still queued is dropped at dispatch
type ClockScheduler struct {
	clock TimeSource
	queue *events.EventQueue

	mu     sync.Mutex
	timers map[TimerID]*clockTimer
	nextID TimerID
	closed bool
	wg     sync.WaitGroup

	// Counters for diagnostics
	dispatched atomic.Uint64
	dropped    atomic.Uint64
}

// NewClockScheduler creates a scheduler reading time from clock
func NewClockScheduler(clock TimeSource) *ClockScheduler {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &ClockScheduler{
		clock:  clock,
		queue:  events.NewEventQueue(),
		timers: make(map[TimerID]*clockTimer),
	}
}

// Now returns the current time of the underlying clock
func (cs *ClockScheduler) Now() time.Time {
	return cs.clock.Now()
}

// ScheduleOnce arms a single-shot timer, returns 0 after Close
func (cs *ClockScheduler) ScheduleOnce(d time.Duration, fn func()) TimerID {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.closed {
		return 0
	}

	cs.nextID++
	id := cs.nextID
	t := &clockTimer{fn: fn, once: true}
	t.timer = time.AfterFunc(d, func() { cs.fire(id) })
	cs.timers[id] = t
	return id
}

// ScheduleRepeating arms a periodic timer, returns 0 after Close
func (cs *ClockScheduler) ScheduleRepeating(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		d = time.Millisecond
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.closed {
		return 0
	}

	cs.nextID++
	id := cs.nextID
	t := &clockTimer{fn: fn, stop: make(chan struct{})}
	cs.timers[id] = t

	cs.wg.Add(1)
	core.Go(func() {
		defer cs.wg.Done()
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cs.fire(id)
			case <-t.stop:
				return
			}
		}
	})
	return id
}

// fire hands a due timer to the consumer
func (cs *ClockScheduler) fire(id TimerID) {
	cs.queue.Push(events.LoopEvent{
		Type:      events.EventTimerFired,
		Timer:     uint64(id),
		Timestamp: cs.clock.Now(),
	})
}

// Cancel stops a timer; a fire event already queued for it is discarded by Dispatch
func (cs *ClockScheduler) Cancel(id TimerID) {
	cs.mu.Lock()
	t, ok := cs.timers[id]
	delete(cs.timers, id)
	cs.mu.Unlock()

	if ok {
		cs.release(t)
	}
}

func (cs *ClockScheduler) release(t *clockTimer) {
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.stop != nil {
		close(t.stop)
	}
}

// Ready is signalled whenever fire events are waiting for Dispatch
func (cs *ClockScheduler) Ready() <-chan struct{} {
	return cs.queue.Ready()
}

// Dispatch runs callbacks of all queued fire events, must be called from the loop goroutine
// Returns the number of callbacks invoked
func (cs *ClockScheduler) Dispatch() int {
	count := 0
	for _, ev := range cs.queue.Consume() {
		if ev.Type != events.EventTimerFired {
			continue
		}

		id := TimerID(ev.Timer)
		cs.mu.Lock()
		t, ok := cs.timers[id]
		if ok && t.once {
			delete(cs.timers, id)
		}
		cs.mu.Unlock()

		if !ok {
			cs.dropped.Add(1)
			continue
		}

		t.fn()
		cs.dispatched.Add(1)
		count++
	}
	return count
}

// Run dispatches fire events until ctx is done or the scheduler is closed
func (cs *ClockScheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-cs.Ready():
			cs.Dispatch()
			if cs.isClosed() {
				return nil
			}
		}
	}
}

func (cs *ClockScheduler) isClosed() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.closed
}

// Close cancels every timer, waits for timer goroutines and wakes the consumer
func (cs *ClockScheduler) Close() {
	cs.mu.Lock()
	if cs.closed {
		cs.mu.Unlock()
		return
	}
	cs.closed = true
	live := cs.timers
	cs.timers = make(map[TimerID]*clockTimer)
	cs.mu.Unlock()

	for _, t := range live {
		cs.release(t)
	}
	cs.wg.Wait()

	cs.queue.Push(events.LoopEvent{Type: events.EventWake, Timestamp: cs.clock.Now()})
}

// Pending returns the number of live timers
func (cs *ClockScheduler) Pending() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.timers)
}

// Dispatched returns how many callbacks have run
func (cs *ClockScheduler) Dispatched() uint64 {
	return cs.dispatched.Load()
}

// Dropped returns how many fire events arrived for cancelled timers
func (cs *ClockScheduler) Dropped() uint64 {
	return cs.dropped.Load()
}
