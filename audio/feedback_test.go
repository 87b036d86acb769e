package audio

import (
	"testing"

	"github.com/lixenwraith/whac-a-mole/engine"
)

type fakePlayer struct {
	sounds []Sound
}

func (f *fakePlayer) Play(s Sound) { f.sounds = append(f.sounds, s) }

func TestFeedbackMapsNotifications(t *testing.T) {
	p := &fakePlayer{}
	var presenter engine.Presenter = NewFeedback(p)

	presenter.NotifyAllLowered()
	presenter.NotifyElapsedTime("0.000")
	presenter.NotifyRoundAndScore(0, 5, 0)
	presenter.NotifyRoundSetup([]int{1, 2}, 1)
	presenter.NotifyHit(1)
	presenter.NotifyWrongHit(2)
	presenter.NotifyMiss(engine.NoTarget)
	presenter.NotifyGameEnded(true, 1)
	presenter.NotifyGameEnded(false, 0)

	expected := []Sound{SoundRoundSetup, SoundHit, SoundWrongHit, SoundMiss, SoundGameComplete, SoundGameAborted}
	if len(p.sounds) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, p.sounds)
	}
	for i := range expected {
		if p.sounds[i] != expected[i] {
			t.Errorf("Cue %d: expected %v, got %v", i, expected[i], p.sounds[i])
		}
	}
}

