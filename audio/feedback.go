package audio

import (
	"github.com/lixenwraith/whac-a-mole/engine"
)

// Player is the sink Feedback plays cues on, satisfied by *SoundManager
type Player interface {
	Play(s Sound)
}

// Feedback is an engine.Presenter that turns round events into sound cues
type Feedback struct {
	engine.NopPresenter
	player Player
}

// NewFeedback creates a presenter playing on p
func NewFeedback(p Player) *Feedback {
	return &Feedback{player: p}
}

func (f *Feedback) NotifyRoundSetup([]int, int) { f.player.Play(SoundRoundSetup) }
func (f *Feedback) NotifyHit(int)               { f.player.Play(SoundHit) }
func (f *Feedback) NotifyWrongHit(int)          { f.player.Play(SoundWrongHit) }
func (f *Feedback) NotifyMiss(int)              { f.player.Play(SoundMiss) }

func (f *Feedback) NotifyGameEnded(completed bool, _ float64) {
	if completed {
		f.player.Play(SoundGameComplete)
		return
	}
	f.player.Play(SoundGameAborted)
}
