// Package audio turns game events into short synthesized sound cues.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-skydive/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings.
const (
	whooshDuration = 180 * time.Millisecond
	popDuration    = 90 * time.Millisecond
	chimeNote      = 90 * time.Millisecond
	chimeTail      = 220 * time.Millisecond
	buzzDuration   = 260 * time.Millisecond
	blipDuration   = 120 * time.Millisecond
	arpeggioNote   = 110 * time.Millisecond
	fallNote       = 200 * time.Millisecond
	attack         = 5 * time.Millisecond
	release        = 60 * time.Millisecond
)

// Config controls cue synthesis.
type Config struct {
	SampleRate int
	Volume     float64 // 0.0 - 1.0
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32
}

// NewOscillator creates a finite oscillator. Noise is generated from a
// fixed-seed LCG so cues are reproducible.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    0x2545F491,
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
			o.noise = o.noise*1664525 + 1013904223
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
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

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

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
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. effects.Volume works in log space, so zero
// maps to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func notes(freqs []float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	seq := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		seq[i] = tone(f, d, wave, rate)
	}
	return beep.Seq(seq...)
}

// Cue builds the sound for an event, or nil if the event is silent.
// Every cue is finite.
func Cue(kind core.EventKind, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch kind {
	case core.EventJump:
		s = newVolume(tone(0, whooshDuration, WaveNoise, rate), 0.5)
	case core.EventChuteOpen:
		s = tone(140, popDuration, WaveSquare, rate)
	case core.EventLanded:
		// B5 then E6
		s = beep.Seq(
			tone(987.77, chimeNote, WaveSquare, rate),
			tone(1318.51, chimeTail, WaveSquare, rate),
		)
	case core.EventMissedZone:
		s = notes([]float64{440, 330}, blipDuration, WaveSine, rate)
	case core.EventCrashed, core.EventTooFast:
		s = tone(100, buzzDuration, WaveSaw, rate)
	case core.EventNoJump:
		s = tone(330, blipDuration, WaveSine, rate)
	case core.EventWin:
		// C5 E5 G5 C6
		s = notes([]float64{523.25, 659.25, 783.99, 1046.5}, arpeggioNote, WaveSquare, rate)
	case core.EventGameOver:
		// G4 E4 C4
		s = notes([]float64{392, 329.63, 261.63}, fallNote, WaveSine, rate)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume)
}
