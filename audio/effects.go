package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/stick-fit/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
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

// NewOscillator creates a finite oscillator streamer
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
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped single-wave blip with short attack and half-length release
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, d/10, d/2, rate)
}

// Effect builds a fresh streamer for s, nil for unknown sounds
func Effect(s Sound, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var st beep.Streamer
	switch s {
	case SoundRelease:
		st = tone(parameter.ReleaseToneHz, parameter.ReleaseToneDuration, WaveSquare, rate)
	case SoundProgress:
		st = tone(parameter.ProgressToneHz, parameter.ProgressToneDuration, WaveSine, rate)
	case SoundClear:
		st = clearChime(rate)
	case SoundFail:
		st = beep.Mix(
			newVolume(tone(parameter.FailToneHz, parameter.FailToneDuration, WaveSaw, rate), 0.7),
			newVolume(tone(0, parameter.FailToneDuration, WaveNoise, rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(st, cfg.MasterVolume)
}

// clearChime is a rising two-note chime over a sustained octave
func clearChime(rate beep.SampleRate) beep.Streamer {
	d := parameter.ClearToneDuration
	notes := beep.Seq(
		tone(parameter.ClearToneHz, d, WaveSine, rate),
		tone(parameter.ClearToneHz*1.5, d, WaveSine, rate),
	)

	octave, err := generators.SineTone(rate, parameter.ClearToneHz*2)
	if err != nil {
		return notes
	}
	pad := NewEnvelope(beep.Take(rate.N(2*d), octave), 2*d, d/4, d, rate)
	return beep.Mix(notes, newVolume(pad, 0.25))
}
