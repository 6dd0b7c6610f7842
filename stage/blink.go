package stage

import (
	"time"

	"github.com/lixenwraith/stick-fit/parameter"
)

// BlinkDef configures the blinking gate durations
type BlinkDef struct {
	Visible time.Duration `toml:"visible"`
	Hidden  time.Duration `toml:"hidden"`
	Fade    time.Duration `toml:"fade"`
}

func DefaultBlink() BlinkDef {
	return BlinkDef{
		Visible: parameter.BlinkVisibleDuration,
		Hidden:  parameter.BlinkHiddenDuration,
		Fade:    parameter.BlinkFadeDuration,
	}
}

// Blink cycles fade-in, visible, fade-out, hidden; it starts at the beginning of a fade-in
// The gate opens when fade-in starts and closes when fade-out starts
type Blink struct {
	def     BlinkDef
	elapsed time.Duration
	visible bool
}

func NewBlink(def BlinkDef) *Blink {
	b := &Blink{def: def}
	b.visible = b.phaseVisible()
	return b
}

func (b *Blink) cycle() time.Duration {
	return b.def.Visible + b.def.Hidden + 2*b.def.Fade
}

// Advance moves the cycle forward, changed reports a visibility flip
func (b *Blink) Advance(dt time.Duration) (visible, changed bool) {
	if c := b.cycle(); c > 0 && dt > 0 {
		b.elapsed = (b.elapsed + dt) % c
	}
	next := b.phaseVisible()
	changed = next != b.visible
	b.visible = next
	return next, changed
}

func (b *Blink) phaseVisible() bool {
	return b.elapsed < b.def.Fade+b.def.Visible
}

func (b *Blink) Visible() bool { return b.visible }

// Alpha returns the display opacity in [0, 1]
// It rises over the open fade-in and falls over the closed fade-out
func (b *Blink) Alpha() float64 {
	f := b.def.Fade
	switch t := b.elapsed; {
	case t < f:
		return float64(t) / float64(f)
	case t < f+b.def.Visible:
		return 1
	case t < 2*f+b.def.Visible:
		return 1 - float64(t-f-b.def.Visible)/float64(f)
	default:
		return 0
	}
}
