package judge

import (
	"math"

	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// Target is the reference segment a stick must match
// Thickness is the perpendicular tolerance basis and is always > 0
type Target struct {
	Segment   vmath.Segment
	Thickness float64
}

// NewTarget builds a target, falling back to MinTargetThickness for non-positive thickness
func NewTarget(seg vmath.Segment, thickness float64) Target {
	if !(thickness > parameter.MinTargetThickness) {
		thickness = parameter.MinTargetThickness
	}
	return Target{Segment: seg, Thickness: thickness}
}

// TargetFromBox derives a target from a rotated rectangle
// The longer half-extent becomes the length axis, the shorter one half the thickness
// extraAngleDeg rotates the length axis further around the box centre
func TargetFromBox(center vmath.Vec2, halfX, halfY, rotationDeg, extraAngleDeg float64) Target {
	halfX, halfY = math.Abs(halfX), math.Abs(halfY)

	axisDeg := rotationDeg
	if halfY > halfX {
		axisDeg += 90
	}
	halfLen := math.Max(halfX, halfY)
	halfThick := math.Min(halfX, halfY)

	if math.Abs(extraAngleDeg) > parameter.MinSegmentLength {
		axisDeg += extraAngleDeg
	}

	dir := vmath.DirectionFromDeg(axisDeg)
	seg := vmath.Segment{
		Start: center.Sub(dir.Mul(halfLen)),
		End:   center.Add(dir.Mul(halfLen)),
	}
	return NewTarget(seg, halfThick*2)
}

// Length returns the target length
func (t Target) Length() float64 { return t.Segment.Length() }

// Pose returns centre, angle and length of the target
func (t Target) Pose() Pose { return PoseOf(t.Segment) }

// TargetSource provides the reference segment, pulled once per tick
// ok is false while the target is missing or inactive
type TargetSource interface {
	CurrentTarget() (t Target, ok bool)
}

// SnapSurface is the optional single-use snap trigger of a target
type SnapSurface interface {
	EnableSnapSurface()
	DisableSnapSurface()
	SnapSurfaceEnabled() bool
}

// StaticTarget is a target computed once at stage setup
type StaticTarget struct {
	target      Target
	active      bool
	snapSurface bool
}

// NewStaticTarget returns an active static target with its snap surface disabled
func NewStaticTarget(t Target) *StaticTarget {
	return &StaticTarget{target: t, active: true}
}

func (s *StaticTarget) CurrentTarget() (Target, bool) {
	if s == nil || !s.active {
		return Target{}, false
	}
	return s.target, true
}

// SetActive toggles whether the target participates in judgment
func (s *StaticTarget) SetActive(active bool) { s.active = active }

func (s *StaticTarget) EnableSnapSurface()       { s.snapSurface = true }
func (s *StaticTarget) DisableSnapSurface()      { s.snapSurface = false }
func (s *StaticTarget) SnapSurfaceEnabled() bool { return s.snapSurface }
