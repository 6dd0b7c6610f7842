package judge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/stick-fit/vmath"
)

func defaultTol() Tolerance { return DefaultConfig().Tolerance() }

func TestEvaluateScenarios(t *testing.T) {
	target := NewTarget(vmath.NewSegment(0, 0, 10, 0), 1)

	tests := []struct {
		name      string
		candidate vmath.Segment
		lengthOK  bool
		ratio     float64
	}{
		{"exact match", vmath.NewSegment(0, 0, 10, 0), true, 1},
		{"reversed labels", vmath.NewSegment(10, 0, 0, 0), true, 1},
		{"ten percent short", vmath.NewSegment(0, 0, 9, 0), false, 0},
		{"ten percent long", vmath.NewSegment(-0.5, 0, 10.5, 0), false, 0},
		{"within band shifted", vmath.NewSegment(0.4, 0, 10.2, 0), true, 0.96},
		{"rotated ten degrees", vmath.SegmentFromPose(vmath.V(5, 0), 10, 10), true, 0},
		{"rotated five degrees", vmath.SegmentFromPose(vmath.V(5, 0), 5, 10), true, math.Cos(5 * math.Pi / 180)},
		{"parallel inside thickness", vmath.NewSegment(0, 0.4, 10, 0.4), true, 1},
		{"parallel outside thickness", vmath.NewSegment(0, 0.6, 10, 0.6), true, 0},
		{"disjoint along axis", vmath.NewSegment(20, 0, 30, 0), true, 0},
		{"half overlap", vmath.NewSegment(5, 0, 15, 0), true, 0.5},
		{"degenerate candidate", vmath.NewSegment(3, 0, 3, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(tt.candidate, target, defaultTol())
			assert.Equal(t, tt.lengthOK, ev.LengthOK)
			assert.InDelta(t, tt.ratio, ev.Ratio, 1e-9)
		})
	}
}

func TestEvaluateRotatedWithinTolerance(t *testing.T) {
	target := NewTarget(vmath.NewSegment(0, 0, 10, 0), 1)
	ev := Evaluate(vmath.SegmentFromPose(vmath.V(5, 0), 2, 10), target, defaultTol())
	assert.True(t, ev.LengthOK)
	assert.Greater(t, ev.Ratio, 0.99)
}

func TestEvaluateOrientationAgnostic(t *testing.T) {
	target := NewTarget(vmath.NewSegment(1, 1, 8, 8), 0.5)
	segs := []vmath.Segment{
		vmath.NewSegment(1, 1, 8, 8),
		vmath.NewSegment(2, 2, 8.9, 8.9),
		vmath.NewSegment(1.1, 1, 8, 8.1),
	}
	for _, s := range segs {
		a := Evaluate(s, target, defaultTol())
		b := Evaluate(s.Reversed(), target, defaultTol())
		assert.Equal(t, a.LengthOK, b.LengthOK)
		assert.InDelta(t, a.Ratio, b.Ratio, 1e-12, "segment %v", s)

		// Reversing the target labels must not matter either
		c := Evaluate(s, NewTarget(target.Segment.Reversed(), target.Thickness), defaultTol())
		assert.InDelta(t, a.Ratio, c.Ratio, 1e-9, "segment %v", s)
	}
}

func TestEvaluateThicknessFloors(t *testing.T) {
	// Zero thickness targets still accept a tiny perpendicular offset
	target := NewTarget(vmath.NewSegment(0, 0, 10, 0), 0)
	assert.Greater(t, target.Thickness, 0.0)

	ev := Evaluate(vmath.NewSegment(0, 0.004, 10, 0.004), target, defaultTol())
	assert.InDelta(t, 1.0, ev.Ratio, 1e-9)

	ev = Evaluate(vmath.NewSegment(0, 0.006, 10, 0.006), target, defaultTol())
	assert.Zero(t, ev.Ratio)

	tol := defaultTol()
	tol.PerpMultiplier = 0
	ev = Evaluate(vmath.NewSegment(0, 0.004, 10, 0.004), NewTarget(target.Segment, 1), tol)
	assert.InDelta(t, 1.0, ev.Ratio, 1e-9)
	ev = Evaluate(vmath.NewSegment(0, 0.006, 10, 0.006), NewTarget(target.Segment, 1), tol)
	assert.Zero(t, ev.Ratio, "multiplier floor keeps 0.005 of perpendicular slack")
}

func TestEvaluateDegenerateTarget(t *testing.T) {
	target := NewTarget(vmath.NewSegment(2, 2, 2, 2), 1)
	ev := Evaluate(vmath.NewSegment(0, 0, 10, 0), target, defaultTol())
	assert.Equal(t, Evaluation{}, ev)
}

func TestTargetFromBox(t *testing.T) {
	// Wide box: X is the length axis
	tg := TargetFromBox(vmath.V(0, 0), 5, 0.5, 0, 0)
	assert.True(t, tg.Segment.ApproxEqual(vmath.NewSegment(-5, 0, 5, 0), 1e-9))
	assert.InDelta(t, 1.0, tg.Thickness, 1e-12)

	// Tall box: Y becomes the length axis
	tg = TargetFromBox(vmath.V(1, 1), 0.25, 3, 0, 0)
	assert.InDelta(t, 6.0, tg.Length(), 1e-9)
	assert.InDelta(t, 0.5, tg.Thickness, 1e-12)
	assert.InDelta(t, 90.0, tg.Segment.AngleDeg(), 1e-9)

	// Extra local angle
	tg = TargetFromBox(vmath.V(0, 0), 5, 0.5, 10, 20)
	assert.InDelta(t, 30.0, tg.Segment.AngleDeg(), 1e-9)

	// Flat box keeps a positive thickness
	tg = TargetFromBox(vmath.V(0, 0), 5, 0, 0, 0)
	assert.Greater(t, tg.Thickness, 0.0)
}

func TestStaticTarget(t *testing.T) {
	st := NewStaticTarget(NewTarget(vmath.NewSegment(0, 0, 10, 0), 1))
	_, ok := st.CurrentTarget()
	assert.True(t, ok)
	assert.False(t, st.SnapSurfaceEnabled())

	st.SetActive(false)
	_, ok = st.CurrentTarget()
	assert.False(t, ok)

	var nilTarget *StaticTarget
	_, ok = nilTarget.CurrentTarget()
	assert.False(t, ok)
}
