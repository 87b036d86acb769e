package engine

// Presenter is the Presentation/Actuation collaborator the engine reports to
// Calls arrive on the engine's goroutine and must not call back into the engine synchronously
type Presenter interface {
	// NotifyRoundSetup raises targets and marks highlighted as the one to strike
	NotifyRoundSetup(targets []int, highlighted int)
	// NotifyAllLowered lowers every target
	NotifyAllLowered()

	NotifyHit(id int)
	NotifyWrongHit(id int)
	NotifyMiss(id int)

	// NotifyElapsedTime carries the round time formatted by FormatElapsed
	NotifyElapsedTime(elapsed string)
	// NotifyRoundAndScore carries completed rounds, total rounds and the score
	NotifyRoundAndScore(round, rounds int, score float64)

	// NotifyGameEnded reports completion (all rounds played) or abort (stopped)
	NotifyGameEnded(completed bool, finalScore float64)
}

// NopPresenter ignores every notification, embed it to implement a subset
type NopPresenter struct{}

func (NopPresenter) NotifyRoundSetup([]int, int)           {}
func (NopPresenter) NotifyAllLowered()                     {}
func (NopPresenter) NotifyHit(int)                         {}
func (NopPresenter) NotifyWrongHit(int)                    {}
func (NopPresenter) NotifyMiss(int)                        {}
func (NopPresenter) NotifyElapsedTime(string)              {}
func (NopPresenter) NotifyRoundAndScore(int, int, float64) {}
func (NopPresenter) NotifyGameEnded(bool, float64)         {}

// Presenters fans each notification out to every element in order
type Presenters []Presenter

func (ps Presenters) NotifyRoundSetup(targets []int, highlighted int) {
	for _, p := range ps {
		// Each presenter gets its own copy so none can alias engine state
		p.NotifyRoundSetup(append([]int(nil), targets...), highlighted)
	}
}

func (ps Presenters) NotifyAllLowered() {
	for _, p := range ps {
		p.NotifyAllLowered()
	}
}

func (ps Presenters) NotifyHit(id int) {
	for _, p := range ps {
		p.NotifyHit(id)
	}
}

func (ps Presenters) NotifyWrongHit(id int) {
	for _, p := range ps {
		p.NotifyWrongHit(id)
	}
}

func (ps Presenters) NotifyMiss(id int) {
	for _, p := range ps {
		p.NotifyMiss(id)
	}
}

func (ps Presenters) NotifyElapsedTime(elapsed string) {
	for _, p := range ps {
		p.NotifyElapsedTime(elapsed)
	}
}

func (ps Presenters) NotifyRoundAndScore(round, rounds int, score float64) {
	for _, p := range ps {
		p.NotifyRoundAndScore(round, rounds, score)
	}
}

func (ps Presenters) NotifyGameEnded(completed bool, finalScore float64) {
	for _, p := range ps {
		p.NotifyGameEnded(completed, finalScore)
	}
}
