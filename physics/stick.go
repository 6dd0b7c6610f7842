package physics

import (
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/vmath"
)

// Stick is a released line body: centre, rotation and base length
// The effective length is length * scale; trigger zones ease scale
// Implements judge.Snappable
type Stick struct {
	id        uint64
	kin       Kinetic
	angleDeg  float64
	angVel    float64 // deg/s
	length    float64
	scale     ScaleTween
	simulated bool
	destroyed bool
}

// ID is unique within the owning World
func (s *Stick) ID() uint64 { return s.id }

// Segment returns the current world endpoints
func (s *Stick) Segment() vmath.Segment {
	return vmath.SegmentFromPose(s.kin.Pos, s.angleDeg, s.Length())
}

// Length returns the effective length including the current scale
func (s *Stick) Length() float64 { return s.length * s.scale.Value() }

// Scale returns the current length multiplier
func (s *Stick) Scale() float64 { return s.scale.Value() }

// ScaleTo eases the length multiplier from its current value to target over duration seconds
func (s *Stick) ScaleTo(target, duration float64) {
	s.scale.Start(target, duration)
}

// Valid is false once the stick has been destroyed
func (s *Stick) Valid() bool { return s != nil && !s.destroyed }

// Halt zeroes velocities and stops simulation
func (s *Stick) Halt() {
	s.kin.Vel = vmath.Vec2{}
	s.kin.Accel = vmath.Vec2{}
	s.angVel = 0
	s.simulated = false
}

// SetPose commits a transform in one step
// p.Length becomes the base length and any scale tween is dropped
func (s *Stick) SetPose(p judge.Pose) {
	s.kin.Pos = p.Center
	s.angleDeg = p.AngleDeg
	s.length = p.Length
	s.scale.Reset()
}

// Pose returns the current transform
func (s *Stick) Pose() judge.Pose {
	return judge.Pose{Center: s.kin.Pos, AngleDeg: s.angleDeg, Length: s.Length()}
}

// Simulated reports whether Step still moves the stick
func (s *Stick) Simulated() bool { return s.simulated && !s.destroyed }

// Velocity returns linear velocity
func (s *Stick) Velocity() vmath.Vec2 { return s.kin.Vel }

// AngularVelocity returns the spin in deg/s
func (s *Stick) AngularVelocity() float64 { return s.angVel }

// Destroy marks the stick invalid; the world drops it on the next Cull
func (s *Stick) Destroy() { s.destroyed = true }

var _ judge.Snappable = (*Stick)(nil)
