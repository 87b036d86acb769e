package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/whac-a-mole/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays feedback cues through a single speaker mixer
// Every Play call is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64 // effects.Volume exponent, base 2
	played      [soundCount]uint64
}

// NewSoundManager creates a new sound manager at the default volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: constants.DefaultVolume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences subsequent cues without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets the volume exponent, clamped to [MinVolume, MaxVolume]
func (sm *SoundManager) SetVolume(exponent float64) {
	if exponent < constants.MinVolume {
		exponent = constants.MinVolume
	}
	if exponent > constants.MaxVolume {
		exponent = constants.MaxVolume
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = exponent
}

// Volume returns the current volume exponent
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Play queues one cue on the mixer
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := NewSound(s, sampleRate, sm.volume, false)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}

// Played returns how many times s reached the mixer
func (sm *SoundManager) Played(s Sound) uint64 {
	if s < 0 || s >= soundCount {
		return 0
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// PlayRoundSetup plays the targets-raised blip
func (sm *SoundManager) PlayRoundSetup() { sm.Play(SoundRoundSetup) }

// PlayHit plays the strike-target chime
func (sm *SoundManager) PlayHit() { sm.Play(SoundHit) }

// PlayWrongHit plays the decoy buzz
func (sm *SoundManager) PlayWrongHit() { sm.Play(SoundWrongHit) }

// PlayMiss plays the empty-hole thud
func (sm *SoundManager) PlayMiss() { sm.Play(SoundMiss) }

// PlayGameOver plays the completion fanfare or the abort tone
func (sm *SoundManager) PlayGameOver(completed bool) {
	if completed {
		sm.Play(SoundGameComplete)
		return
	}
	sm.Play(SoundGameAborted)
}
