package stage

import (
	"github.com/lixenwraith/stick-fit/draw"
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/parameter"
)

// motion is a target source that moves over time and can be frozen
type motion interface {
	judge.TargetSource
	judge.SnapSurface
	Advance(dt float64)
	Stop()
}

// Stage is a built, playable stage definition
type Stage struct {
	Def    Definition
	Base   judge.Target
	Target judge.TargetSource
	Guide  *draw.StartGuide // nil for free starts
	Blink  *Blink           // nil when always visible
	Wave   *Mover           // nil unless the target waves
	Slide  *Slide           // nil unless the target slides
	Scale  *ScaleZone       // nil without a scale trigger zone

	motion motion
}

// Build validates def and assembles its target source, guide and blink gate
func Build(def Definition) (*Stage, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	base, _ := def.BaseTarget()

	s := &Stage{Def: def, Base: base}
	switch {
	case def.Wave != nil:
		s.Wave = NewMover(base, *def.Wave)
		s.motion = s.Wave
		s.Target = s.Wave
	case def.Slide != nil:
		s.Slide = NewSlide(base, *def.Slide)
		s.motion = s.Slide
		s.Target = s.Slide
	default:
		s.Target = judge.NewStaticTarget(base)
	}

	if g := def.Guide; g != nil {
		offset := g.VerticalOffset
		if offset == 0 {
			offset = parameter.GuideVerticalOffset
		}
		s.Guide = NewGuide(base, offset, g.Radius)
	}
	if def.Blink != nil {
		s.Blink = NewBlink(*def.Blink)
	}
	if def.Scale != nil {
		s.Scale = NewScaleZone(*def.Scale)
	}
	return s, nil
}

// NewGuide places a start guide for the base target
func NewGuide(base judge.Target, offset, radius float64) *draw.StartGuide {
	return draw.NewStartGuide(base.Segment.Start, offset, radius)
}

// Name returns the stage name
func (s *Stage) Name() string { return s.Def.Name }

// Advance moves the target, dt in seconds
func (s *Stage) Advance(dt float64) {
	if s.motion != nil {
		s.motion.Advance(dt)
	}
}

// Stop freezes target motion after clear
func (s *Stage) Stop() {
	if s.motion != nil {
		s.motion.Stop()
	}
}

// SnapAxes returns the stage override or fallback
func (s *Stage) SnapAxes(fallback judge.SnapAxes) judge.SnapAxes {
	if s.Def.Snap != nil {
		return *s.Def.Snap
	}
	return fallback
}

// StartOverride returns the guide as a draw.StartOverride, nil when free
func (s *Stage) StartOverride() draw.StartOverride {
	if s.Guide == nil {
		return nil
	}
	return s.Guide
}
