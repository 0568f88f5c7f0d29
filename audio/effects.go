package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pellet-run/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator stream
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
			return i, false
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

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a stream in attack/sustain/release shaping
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a volume effect.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateChompSound generates the short blip for eating a dot
func CreateChompSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(440.0, parameter.ChompDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ChompDuration, parameter.ChompAttack, parameter.ChompRelease, rate)
	return newVolume(shaped, 0.5*parameter.MasterVolume)
}

// CreatePelletSound generates the rising two-tone for a power pellet
func CreatePelletSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.PelletDuration / 2

	low := NewOscillator(523.25, half, WaveSine, rate) // C5
	lowShaped := NewEnvelope(low, half, parameter.PelletAttack, parameter.PelletRelease/2, rate)

	high := NewOscillator(1046.50, half, WaveSine, rate) // C6
	highShaped := NewEnvelope(high, half, parameter.PelletAttack, parameter.PelletRelease/2, rate)

	return newVolume(beep.Seq(lowShaped, highShaped), 0.7*parameter.MasterVolume)
}

// CreateCaptureSound generates an ascending arpeggio for eating a
// scared adversary
func CreateCaptureSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.CaptureNoteDuration
	notes := []float64{659.25, 830.61, 987.77} // E5 G#5 B5

	streams := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, d, WaveSquare, rate)
		streams = append(streams, NewEnvelope(osc, d, parameter.CaptureAttack, parameter.CaptureRelease, rate))
	}
	return newVolume(beep.Seq(streams...), 0.6*parameter.MasterVolume)
}

// CreateDeathSound generates a falling saw sweep mixed with noise
func CreateDeathSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DeathDuration

	sweep := NewOscillator(220.0, d, WaveSaw, rate)
	sweepShaped := NewEnvelope(sweep, d, parameter.DeathAttack, parameter.DeathRelease, rate)

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, parameter.DeathAttack, parameter.DeathRelease, rate)

	mixed := beep.Mix(
		newVolume(sweepShaped, 0.7),
		newVolume(noiseShaped, 0.2),
	)
	return newVolume(mixed, 0.8*parameter.MasterVolume)
}

// CreateBonusSound generates a bright bell with an octave overtone
func CreateBonusSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BonusDuration

	fund := NewOscillator(880.0, d, WaveSine, rate) // A5
	fundShaped := NewEnvelope(fund, d, parameter.BonusAttack, parameter.BonusRelease, rate)

	over := NewOscillator(1760.0, d, WaveSine, rate)
	overShaped := NewEnvelope(over, d, parameter.BonusAttack, parameter.BonusRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, 0.6*parameter.MasterVolume)
}
