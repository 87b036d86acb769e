package constants

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the beep effects.Volume exponent (base 2)
	DefaultVolume = -1.0

	// MinVolume and MaxVolume bound the configurable volume exponent
	MinVolume = -10.0
	MaxVolume = 2.0
)

// Feedback tone frequencies (Hz) and durations
const (
	ToneRoundSetup = 660.0
	ToneHit        = 1320.0
	ToneWrongHit   = 140.0
	ToneMiss       = 330.0

	ToneShort = 60 * time.Millisecond
	ToneLong  = 180 * time.Millisecond
)
