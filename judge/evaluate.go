package judge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// Tolerance groups the three geometric tolerances of one evaluation
type Tolerance struct {
	LengthPercent  float64 // symmetric band around length ratio 1.0
	AngleDeg       float64 // max angular deviation, direction sign ignored
	PerpMultiplier float64 // scales half the target thickness into the off-axis limit
}

// Evaluation is the result of one candidate/target comparison
type Evaluation struct {
	LengthOK bool
	Ratio    float64 // overlap ratio in [0, 1], forced to 0 when LengthOK is false
}

// Evaluate compares a candidate segment against the target
// Checks run cheapest first: length band, angle, perpendicular offset, projected overlap
// Degenerate segments yield (false, 0)
func Evaluate(candidate vmath.Segment, target Target, tol Tolerance) Evaluation {
	targetLen := target.Length()
	candLen := candidate.Length()

	u, okT := target.Segment.Direction(parameter.MinSegmentLength)
	v, okC := candidate.Direction(parameter.MinSegmentLength)
	if !okT || !okC {
		return Evaluation{}
	}

	ratio := candLen / targetLen
	lengthOK := ratio >= 1-tol.LengthPercent && ratio <= 1+tol.LengthPercent
	if !lengthOK {
		return Evaluation{}
	}

	return Evaluation{LengthOK: true, Ratio: overlap(candidate, target, u, v, targetLen, tol)}
}

// overlap assumes both directions are valid and the length band passed
func overlap(candidate vmath.Segment, target Target, u, v vmath.Vec2, targetLen float64, tol Tolerance) float64 {
	cosAngle := math.Abs(u.Dot(v))
	if cosAngle < math.Cos(mgl64.DegToRad(tol.AngleDeg)) {
		return 0
	}

	thickness := math.Max(target.Thickness, parameter.MinEvalThickness)
	perpTol := thickness * 0.5 * math.Max(tol.PerpMultiplier, parameter.MinPerpMultiplier)

	origin := target.Segment.Start
	d0 := vmath.PerpDistance(candidate.Start, origin, u)
	d1 := vmath.PerpDistance(candidate.End, origin, u)
	if math.Max(d0, d1) > perpTol {
		return 0
	}

	p0 := vmath.Project(candidate.Start, origin, u)
	p1 := vmath.Project(candidate.End, origin, u)
	return vmath.Clamp01(vmath.IntervalOverlap(p0, p1, 0, targetLen) / targetLen)
}
