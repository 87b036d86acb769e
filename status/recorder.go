package status

import (
	"sync/atomic"

	"github.com/lixenwraith/whac-a-mole/engine"
)

// Metric keys written by Recorder
const (
	KeyGamesStarted   = "games.started"
	KeyGamesCompleted = "games.completed"
	KeyGamesAborted   = "games.aborted"
	KeyRoundsPlayed   = "rounds.played"
	KeyRoundsTimeout  = "rounds.timeout"
	KeyHits           = "attempts.hit"
	KeyWrongHits      = "attempts.wrong_hit"
	KeyMisses         = "attempts.miss"
	KeyScoreLast      = "score.last"
	KeyScoreBest      = "score.best"
	KeyGameActive     = "game.active"
	KeySession        = "game.session"
	KeyDifficulty     = "game.difficulty"
)

// Recorder is an engine.Presenter that counts session activity into a Registry
// A round that ends without a hit or wrong hit is counted as a timeout
type Recorder struct {
	engine.NopPresenter

	started, completed, aborted *atomic.Int64
	rounds, timeouts            *atomic.Int64
	hits, wrongHits, misses     *atomic.Int64
	last, best                  *AtomicFloat
	active                      *atomic.Bool
	session, difficulty         *AtomicString

	resolved  bool // Current round ended by a strike
	lastRound int
}

// NewRecorder caches every metric pointer of reg
func NewRecorder(reg *Registry) *Recorder {
	return &Recorder{
		started:    reg.Ints.Get(KeyGamesStarted),
		completed:  reg.Ints.Get(KeyGamesCompleted),
		aborted:    reg.Ints.Get(KeyGamesAborted),
		rounds:     reg.Ints.Get(KeyRoundsPlayed),
		timeouts:   reg.Ints.Get(KeyRoundsTimeout),
		hits:       reg.Ints.Get(KeyHits),
		wrongHits:  reg.Ints.Get(KeyWrongHits),
		misses:     reg.Ints.Get(KeyMisses),
		last:       reg.Floats.Get(KeyScoreLast),
		best:       reg.Floats.Get(KeyScoreBest),
		active:     reg.Bools.Get(KeyGameActive),
		session:    reg.Strings.Get(KeySession),
		difficulty: reg.Strings.Get(KeyDifficulty),
	}
}

// BeginGame records a new session; call right before RoundEngine.Start
func (r *Recorder) BeginGame(sessionID string, d engine.Difficulty) {
	r.started.Add(1)
	r.active.Store(true)
	r.session.Store(sessionID)
	r.difficulty.Store(d.String())
	r.resolved = false
	r.lastRound = 0
}

func (r *Recorder) NotifyHit(int) {
	r.hits.Add(1)
	r.resolved = true
}

func (r *Recorder) NotifyWrongHit(int) {
	r.wrongHits.Add(1)
	r.resolved = true
}

func (r *Recorder) NotifyMiss(int) {
	r.misses.Add(1)
}

// NotifyRoundAndScore counts a round each time the completed count advances
func (r *Recorder) NotifyRoundAndScore(round, _ int, score float64) {
	r.last.Set(score)
	if round <= r.lastRound {
		r.lastRound = round
		return
	}

	r.lastRound = round
	r.rounds.Add(1)
	if !r.resolved {
		r.timeouts.Add(1)
	}
	r.resolved = false
}

func (r *Recorder) NotifyGameEnded(completed bool, finalScore float64) {
	r.active.Store(false)
	r.last.Set(finalScore)
	if !completed {
		r.aborted.Add(1)
		return
	}
	r.completed.Add(1)
	r.best.Max(finalScore)
}

// Best returns the best completed score and whether one exists
func (r *Recorder) Best() (float64, bool) {
	return r.best.Get(), r.best.IsSet()
}
