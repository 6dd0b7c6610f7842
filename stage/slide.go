package stage

import (
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// SlideDef configures a target that ping-pongs horizontally as a whole
type SlideDef struct {
	Distance  float64 `toml:"distance"` // total travel of one round trip
	Duration  float64 `toml:"duration"` // seconds per round trip
	StartLeft bool    `toml:"start_left"`
}

func DefaultSlide() SlideDef {
	return SlideDef{Distance: parameter.SlideDistance, Duration: parameter.SlideDuration}
}

// Slide translates the whole target along X with eased yoyo motion
// Implements judge.TargetSource and judge.SnapSurface
type Slide struct {
	def         SlideDef
	base        judge.Target
	elapsed     float64
	stopped     bool
	snapSurface bool
}

func NewSlide(base judge.Target, def SlideDef) *Slide {
	return &Slide{def: def, base: base}
}

func (s *Slide) Advance(dt float64) {
	if s.stopped || dt <= 0 {
		return
	}
	s.elapsed += dt
}

// Offset returns the current X displacement from the base target
func (s *Slide) Offset() float64 {
	dir := 1.0
	if s.def.StartLeft {
		dir = -1
	}
	return dir * s.def.Distance / 2 * yoyo(s.elapsed, s.def.Duration/2)
}

func (s *Slide) CurrentTarget() (judge.Target, bool) {
	seg := s.base.Segment.Translate(vmath.V(s.Offset(), 0))
	return judge.Target{Segment: seg, Thickness: s.base.Thickness}, true
}

func (s *Slide) Stop()         { s.stopped = true }
func (s *Slide) Stopped() bool { return s.stopped }

func (s *Slide) EnableSnapSurface()       { s.snapSurface = true }
func (s *Slide) DisableSnapSurface()      { s.snapSurface = false }
func (s *Slide) SnapSurfaceEnabled() bool { return s.snapSurface }
