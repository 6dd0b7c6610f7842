package judge

import "github.com/lixenwraith/stick-fit/vmath"

// Candidate is a released stick under judgment
// Implementations hand out a fresh world-space segment on every call
type Candidate interface {
	// Segment returns the current world endpoints
	Segment() vmath.Segment

	// Valid is false once the underlying object has been destroyed
	Valid() bool
}

// Snappable is a candidate whose transform the snap engine may take over
type Snappable interface {
	Candidate

	// Halt zeroes velocities and disables further simulation
	Halt()

	// SetPose commits the resolved transform atomically
	SetPose(p Pose)
}

// Pose is a stick transform expressed as centre, rotation and length
type Pose struct {
	Center   vmath.Vec2
	AngleDeg float64
	Length   float64
}

// Segment rebuilds the endpoints described by the pose
func (p Pose) Segment() vmath.Segment {
	return vmath.SegmentFromPose(p.Center, p.AngleDeg, p.Length)
}

// PoseOf describes a segment as a pose
func PoseOf(s vmath.Segment) Pose {
	return Pose{Center: s.Midpoint(), AngleDeg: s.AngleDeg(), Length: s.Length()}
}
