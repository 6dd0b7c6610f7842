package judge

import (
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// ResolvePose blends the current stick transform with the target per axis
// A chosen length of ~0 falls back to the target length
func ResolvePose(current vmath.Segment, target Target, axes SnapAxes) Pose {
	cur := PoseOf(current)
	tgt := target.Pose()

	length := cur.Length
	if axes.Length {
		length = tgt.Length
	}
	if length <= parameter.MinSegmentLength {
		length = tgt.Length
	}

	center := cur.Center
	if axes.X {
		center[0] = tgt.Center[0]
	}
	if axes.Y {
		center[1] = tgt.Center[1]
	}

	angle := cur.AngleDeg
	if axes.Rotation {
		angle = tgt.AngleDeg
	}

	return Pose{Center: center, AngleDeg: angle, Length: length}
}
