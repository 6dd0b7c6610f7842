package stage

import (
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// WaveDef configures a moving target whose end follows a waving anchor
type WaveDef struct {
	AmplitudeX   float64 `toml:"amplitude_x"`
	AmplitudeY   float64 `toml:"amplitude_y"`
	PeriodX      float64 `toml:"period_x"` // seconds per leg
	PeriodY      float64 `toml:"period_y"`
	PhaseDelayY  float64 `toml:"phase_delay_y"`
	LeftDistance float64 `toml:"left_distance"` // anchor sits this far right of the target end
}

// DefaultWave returns the stock wave motion
func DefaultWave() WaveDef {
	return WaveDef{
		AmplitudeX:   parameter.MoverAmplitudeX,
		AmplitudeY:   parameter.MoverAmplitudeY,
		PeriodX:      parameter.MoverPeriodX,
		PeriodY:      parameter.MoverPeriodY,
		PhaseDelayY:  parameter.MoverPhaseDelayY,
		LeftDistance: parameter.MoverLeftDistance,
	}
}

// Mover is a dynamic target: fixed start, end tracking an anchor that waves along X and Y
// Implements judge.TargetSource and judge.SnapSurface
type Mover struct {
	def        WaveDef
	start      vmath.Vec2
	baseAnchor vmath.Vec2
	thickness  float64

	elapsed     float64
	stopped     bool
	snapSurface bool
}

// NewMover starts the anchor at the base target end, offset right by LeftDistance
func NewMover(base judge.Target, def WaveDef) *Mover {
	return &Mover{
		def:        def,
		start:      base.Segment.Start,
		baseAnchor: base.Segment.End.Add(vmath.V(def.LeftDistance, 0)),
		thickness:  base.Thickness,
	}
}

// Advance moves the anchor by dt seconds, no-op once stopped
func (m *Mover) Advance(dt float64) {
	if m.stopped || dt <= 0 {
		return
	}
	m.elapsed += dt
}

// Anchor returns the current anchor position
func (m *Mover) Anchor() vmath.Vec2 {
	dx := m.def.AmplitudeX * yoyo(m.elapsed, m.def.PeriodX)
	dy := m.def.AmplitudeY * yoyo(m.elapsed-m.def.PhaseDelayY, m.def.PeriodY)
	return m.baseAnchor.Add(vmath.V(dx, dy))
}

// CurrentTarget rebuilds the segment from the fixed start to the anchor-following end
func (m *Mover) CurrentTarget() (judge.Target, bool) {
	end := m.Anchor().Sub(vmath.V(m.def.LeftDistance, 0))
	seg := vmath.Segment{Start: m.start, End: end}
	if seg.Length() <= parameter.MinSegmentLength {
		return judge.Target{}, false
	}
	return judge.NewTarget(seg, m.thickness), true
}

// Stop freezes the motion, used once the stage is cleared
func (m *Mover) Stop()         { m.stopped = true }
func (m *Mover) Stopped() bool { return m.stopped }

func (m *Mover) EnableSnapSurface()       { m.snapSurface = true }
func (m *Mover) DisableSnapSurface()      { m.snapSurface = false }
func (m *Mover) SnapSurfaceEnabled() bool { return m.snapSurface }
