package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/whac-a-mole/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw square, saw and noise waves
// Sine tones come from beep's own generator, see newTone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a base-2 volume exponent, silent when muted
func newVolume(s beep.Streamer, exponent float64, muted bool) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: exponent, Silent: muted}
}

// newTone returns a finite, shaped tone
func newTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	var raw beep.Streamer
	if wave == WaveSine {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			// Frequency above Nyquist, fall back to the hand-rolled oscillator
			raw = NewOscillator(freq, duration, WaveSine, rate)
		} else {
			raw = beep.Take(rate.N(duration), sine)
		}
	} else {
		raw = NewOscillator(freq, duration, wave, rate)
	}

	edge := duration / 6
	return NewEnvelope(raw, duration, edge, edge, rate)
}

// Sound identifies one feedback cue
type Sound int

const (
	SoundRoundSetup Sound = iota
	SoundHit
	SoundWrongHit
	SoundMiss
	SoundGameComplete
	SoundGameAborted
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundRoundSetup:
		return "round_setup"
	case SoundHit:
		return "hit"
	case SoundWrongHit:
		return "wrong_hit"
	case SoundMiss:
		return "miss"
	case SoundGameComplete:
		return "game_complete"
	case SoundGameAborted:
		return "game_aborted"
	default:
		return "unknown"
	}
}

// NewSound builds the streamer for one cue at the given volume exponent
// Returns nil for unknown cues
func NewSound(s Sound, rate beep.SampleRate, exponent float64, muted bool) beep.Streamer {
	var body beep.Streamer

	switch s {
	case SoundRoundSetup:
		body = newTone(constants.ToneRoundSetup, constants.ToneShort, WaveSine, rate)
	case SoundHit:
		// Two-note chime, fifth above the setup tone then the octave
		body = beep.Seq(
			newTone(constants.ToneHit*3/4, constants.ToneShort, WaveSine, rate),
			newTone(constants.ToneHit, constants.ToneShort, WaveSine, rate),
		)
	case SoundWrongHit:
		body = newTone(constants.ToneWrongHit, constants.ToneLong, WaveSaw, rate)
	case SoundMiss:
		body = beep.Mix(
			newVolume(newTone(constants.ToneMiss, constants.ToneShort, WaveSquare, rate), -2, false),
			newVolume(newTone(0, constants.ToneShort, WaveNoise, rate), -3, false),
		)
	case SoundGameComplete:
		body = beep.Seq(
			newTone(constants.ToneRoundSetup, constants.ToneShort, WaveSine, rate),
			newTone(constants.ToneHit*3/4, constants.ToneShort, WaveSine, rate),
			newTone(constants.ToneHit, constants.ToneLong, WaveSine, rate),
		)
	case SoundGameAborted:
		body = beep.Seq(
			newTone(constants.ToneMiss, constants.ToneShort, WaveSquare, rate),
			newTone(constants.ToneWrongHit, constants.ToneLong, WaveSquare, rate),
		)
	default:
		return nil
	}

	return newVolume(body, exponent, muted)
}
