package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Segment is an immutable two-point snapshot in world space
// Recomputed from live transforms every tick, never cached across ticks
type Segment struct {
	Start Vec2
	End   Vec2
}

// NewSegment builds a segment from raw coordinates
func NewSegment(x0, y0, x1, y1 float64) Segment {
	return Segment{Start: Vec2{x0, y0}, End: Vec2{x1, y1}}
}

// SegmentFromPose rebuilds endpoints of a segment of given length centred on center, rotated by angleDeg
func SegmentFromPose(center Vec2, angleDeg, length float64) Segment {
	half := DirectionFromDeg(angleDeg).Mul(length * 0.5)
	return Segment{Start: center.Sub(half), End: center.Add(half)}
}

// Vector returns End - Start
func (s Segment) Vector() Vec2 {
	return s.End.Sub(s.Start)
}

// Length returns the Euclidean length
func (s Segment) Length() float64 {
	return s.Vector().Len()
}

// Direction returns the unit direction Start->End
// ok is false for segments shorter than minLen
func (s Segment) Direction(minLen float64) (Vec2, bool) {
	return Unit(s.Vector(), minLen)
}

// Midpoint returns the centre of the segment
func (s Segment) Midpoint() Vec2 {
	return s.Start.Add(s.End).Mul(0.5)
}

// AngleDeg returns the Start->End angle in degrees in (-180, 180]
func (s Segment) AngleDeg() float64 {
	d := s.Vector()
	return mgl64.RadToDeg(math.Atan2(d[1], d[0]))
}

// Reversed swaps the endpoint labels
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Translate shifts both endpoints by d
func (s Segment) Translate(d Vec2) Segment {
	return Segment{Start: s.Start.Add(d), End: s.End.Add(d)}
}

// ApproxEqual compares endpoints in order
func (s Segment) ApproxEqual(o Segment, eps float64) bool {
	return ApproxEqual(s.Start, o.Start, eps) && ApproxEqual(s.End, o.End, eps)
}

func (s Segment) String() string {
	return fmt.Sprintf("(%.3f,%.3f)-(%.3f,%.3f)", s.Start[0], s.Start[1], s.End[0], s.End[1])
}
