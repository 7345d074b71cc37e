package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/bitga/parameter"
	"github.com/lixenwraith/bitga/report"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator producing duration worth of samples
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope shapes s over duration; the sustain phase sits between attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   att + max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or negative gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateOptimalChime generates a rising two-note chime: a square attack note and a sine resolve
func CreateOptimalChime(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.ChimeNote1Freq, parameter.ChimeNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)

	n2 := NewOscillator(parameter.ChimeNote2Freq, parameter.ChimeNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.MasterVolume)
}

// CreateNearTone generates a single soft sine tone
func CreateNearTone(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, parameter.NearToneFreq)
	if err != nil {
		return nil, fmt.Errorf("near tone: %w", err)
	}

	tone := beep.Take(rate.N(parameter.NearToneDuration), sine)
	shaped := NewEnvelope(tone, parameter.NearToneDuration, parameter.ChimeAttack, parameter.NearToneDuration/2, rate)

	return newVolume(shaped, parameter.NearToneVolume*cfg.MasterVolume), nil
}

// VerdictSound returns the streamer announcing a verdict
func VerdictSound(v report.Verdict, cfg *Config) (beep.Streamer, error) {
	if v == report.VerdictOptimal {
		return CreateOptimalChime(cfg), nil
	}
	return CreateNearTone(cfg)
}
