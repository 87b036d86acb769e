package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/whac-a-mole/constants"
)

// NoTarget is the target id reported when a strike lands outside every slot
const NoTarget = -1

// RoundEngine runs the round lifecycle of one game session
//
// Lifecycle:
//   - Idle -> Start -> InterRoundWait
//   - InterRoundWait -> delay timer -> RoundActive (targets raised, index 0 highlighted)
//   - RoundActive -> hit / wrong-hit / timeout -> InterRoundWait, or Ended after the last round
//   - InterRoundWait | RoundActive -> Stop -> Ended (aborted)
//
// Thread-Safety: none. Every method, including timer callbacks, must run on the
// scheduler's dispatch goroutine. ManualScheduler and ClockScheduler both guarantee that
// for callbacks; callers own the guarantee for their own calls
type RoundEngine struct {
	sched     Scheduler
	rng       RandomSource
	presenter Presenter

	difficulty Difficulty
	params     Params

	phase        Phase
	currentRound int
	score        float64
	targets      []int     // Index 0 is the strike target
	roundStart   time.Time // Start of the current active round
	pendingEdge  bool      // Last OR'ed press state of all input channels
	completed    bool      // Last game finished every round

	tickTimer  TimerID
	delayTimer TimerID
}

// Option configures a RoundEngine at construction
type Option func(*RoundEngine)

// WithRandomSource replaces the engine's generator
func WithRandomSource(rng RandomSource) Option {
	return func(e *RoundEngine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds the engine's own PCG generator
func WithSeed(seed uint64) Option {
	return func(e *RoundEngine) {
		e.rng = NewSeededSource(seed)
	}
}

// NewRoundEngine creates an idle engine driven by sched and reporting to presenter
// Without WithSeed or WithRandomSource the generator is seeded from the scheduler clock
func NewRoundEngine(sched Scheduler, presenter Presenter, opts ...Option) *RoundEngine {
	if presenter == nil {
		presenter = NopPresenter{}
	}

	e := &RoundEngine{
		sched:     sched,
		presenter: presenter,
		phase:     PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewSeededSource(uint64(sched.Now().UnixNano()))
	}
	return e
}

// ===== LIFECYCLE =====

// Start begins a new game, restarting any game in progress
// Returns ErrUnknownDifficulty without touching state when d is not enumerated
func (e *RoundEngine) Start(d Difficulty) error {
	params, err := d.Params()
	if err != nil {
		return err
	}

	e.cancelTimers()
	e.transition(PhaseInterRoundWait)

	e.difficulty = d
	e.params = params
	e.currentRound = 0
	e.score = 0
	e.targets = nil
	e.roundStart = time.Time{}
	e.pendingEdge = false
	e.completed = false

	e.presenter.NotifyAllLowered()
	e.presenter.NotifyElapsedTime(FormatElapsed(0))
	e.presenter.NotifyRoundAndScore(e.currentRound, e.params.Rounds, e.score)

	e.tickTimer = e.sched.ScheduleRepeating(constants.UITickInterval, e.OnTick)
	e.delayTimer = e.sched.ScheduleOnce(e.params.InterRoundInterval, e.OnInterRoundDelayFired)
	return nil
}

// Stop aborts the game in progress; no-op when idle or ended
func (e *RoundEngine) Stop() {
	if !e.phase.Active() {
		return
	}

	// Timers go first so a late fire cannot observe the half-stopped engine
	e.cancelTimers()
	if !e.transition(PhaseEnded) {
		return
	}

	e.targets = nil
	e.completed = false
	e.presenter.NotifyAllLowered()
	e.presenter.NotifyGameEnded(false, e.score)
}

// ===== TIMER CALLBACKS =====

// OnTick refreshes the elapsed display and ends an active round past MaxRoundTime
func (e *RoundEngine) OnTick() {
	if !e.phase.Active() {
		return
	}

	elapsed := e.Elapsed()
	e.presenter.NotifyElapsedTime(FormatElapsed(elapsed))

	if e.phase == PhaseRoundActive && elapsed > constants.MaxRoundTime {
		e.endRound()
	}
}

// OnInterRoundDelayFired raises the next round; ignored outside InterRoundWait
func (e *RoundEngine) OnInterRoundDelayFired() {
	if e.phase != PhaseInterRoundWait {
		return
	}

	// Called directly rather than by the timer: the armed timer must not fire a second round
	e.sched.Cancel(e.delayTimer)
	e.delayTimer = 0

	e.beginRound()
}

// ===== INPUT =====

// OnPointerEdge feeds the combined press state of the pointer over targetID
// A strike is resolved only on the press->release edge, repeated presses are ignored
func (e *RoundEngine) OnPointerEdge(targetID int, pressed bool) {
	if !e.phase.Active() {
		return
	}

	released := e.pendingEdge && !pressed
	e.pendingEdge = pressed

	if !released || e.phase != PhaseRoundActive {
		return
	}
	e.resolveAttempt(targetID)
}

// OnPointerStatus ORs several input channels (mouse buttons) into one edge
func (e *RoundEngine) OnPointerStatus(targetID int, buttons ...bool) {
	pressed := false
	for _, b := range buttons {
		pressed = pressed || b
	}
	e.OnPointerEdge(targetID, pressed)
}

// ===== ROUND MECHANICS =====

// beginRound draws a fresh target set and raises it
func (e *RoundEngine) beginRound() {
	if !e.transition(PhaseRoundActive) {
		return
	}

	e.targets = SelectTargets(e.rng, constants.TargetSlots, e.params.RoundTargets)
	e.roundStart = e.sched.Now()

	highlighted := NoTarget
	if len(e.targets) > 0 {
		highlighted = e.targets[0]
	}
	e.presenter.NotifyRoundSetup(slices.Clone(e.targets), highlighted)
}

// resolveAttempt scores a completed strike on targetID
func (e *RoundEngine) resolveAttempt(targetID int) {
	if !slices.Contains(e.targets, targetID) {
		// Nothing raised under the pointer, the round keeps running
		e.presenter.NotifyMiss(targetID)
		return
	}

	if targetID == e.targets[0] {
		e.score += HitReward(e.Elapsed(), constants.MaxRoundTime)
		e.presenter.NotifyHit(targetID)
	} else {
		e.score -= constants.WrongHitPenalty
		e.presenter.NotifyWrongHit(targetID)
	}

	e.endRound()
}

// endRound lowers targets and either schedules the next round or finishes the game
func (e *RoundEngine) endRound() {
	e.presenter.NotifyAllLowered()
	e.targets = nil
	e.currentRound++
	e.presenter.NotifyRoundAndScore(e.currentRound, e.params.Rounds, e.score)

	if e.currentRound >= e.params.Rounds {
		e.cancelTimers()
		if !e.transition(PhaseEnded) {
			return
		}
		e.completed = true
		e.presenter.NotifyGameEnded(true, e.score)
		return
	}

	if !e.transition(PhaseInterRoundWait) {
		return
	}
	e.delayTimer = e.sched.ScheduleOnce(e.params.InterRoundInterval, e.OnInterRoundDelayFired)
	e.presenter.NotifyElapsedTime(FormatElapsed(0))
}

// transition moves to phase to if the lifecycle allows it
func (e *RoundEngine) transition(to Phase) bool {
	if !CanTransition(e.phase, to) {
		return false
	}
	e.phase = to
	return true
}

// cancelTimers stops both timers, safe to call with none armed
func (e *RoundEngine) cancelTimers() {
	if e.tickTimer != 0 {
		e.sched.Cancel(e.tickTimer)
		e.tickTimer = 0
	}
	if e.delayTimer != 0 {
		e.sched.Cancel(e.delayTimer)
		e.delayTimer = 0
	}
}

// ===== ACCESSORS =====

// CurrentScore returns the running score
func (e *RoundEngine) CurrentScore() float64 {
	return e.score
}

// Phase returns the lifecycle state
func (e *RoundEngine) Phase() Phase {
	return e.phase
}

// CurrentRound returns the number of resolved rounds
func (e *RoundEngine) CurrentRound() int {
	return e.currentRound
}

// Rounds returns the round count of the current difficulty
func (e *RoundEngine) Rounds() int {
	return e.params.Rounds
}

// Difficulty returns the difficulty of the last started game
func (e *RoundEngine) Difficulty() Difficulty {
	return e.difficulty
}

// Targets returns a copy of the raised targets, strike target first
func (e *RoundEngine) Targets() []int {
	return slices.Clone(e.targets)
}

// Completed reports whether the last game ended by playing every round
func (e *RoundEngine) Completed() bool {
	return e.phase == PhaseEnded && e.completed
}

// Elapsed returns time since the round started, zero outside RoundActive
func (e *RoundEngine) Elapsed() time.Duration {
	if e.phase != PhaseRoundActive {
		return 0
	}
	return e.sched.Now().Sub(e.roundStart)
}
