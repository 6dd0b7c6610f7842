package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentDerived(t *testing.T) {
	s := NewSegment(0, 0, 3, 4)

	assert.InDelta(t, 5.0, s.Length(), 1e-12)
	assert.True(t, ApproxEqual(V(1.5, 2), s.Midpoint(), 1e-12))

	dir, ok := s.Direction(1e-4)
	require.True(t, ok)
	assert.True(t, ApproxEqual(V(0.6, 0.8), dir, 1e-12))
	assert.InDelta(t, math.Atan2(4, 3)*180/math.Pi, s.AngleDeg(), 1e-9)
}

func TestSegmentDirectionDegenerate(t *testing.T) {
	s := NewSegment(1, 1, 1, 1.00001)
	_, ok := s.Direction(1e-4)
	assert.False(t, ok)

	_, ok = Unit(Vec2{}, 0)
	assert.False(t, ok, "zero vector must not normalize")
}

func TestSegmentFromPoseRoundTrip(t *testing.T) {
	cases := []Segment{
		NewSegment(0, 0, 10, 0),
		NewSegment(-2, 3, 4, -1),
		NewSegment(5, 5, 5, 9),
	}
	for _, s := range cases {
		rebuilt := SegmentFromPose(s.Midpoint(), s.AngleDeg(), s.Length())
		assert.Truef(t, rebuilt.ApproxEqual(s, 1e-9), "%v rebuilt as %v", s, rebuilt)
	}
}

func TestReversedAndTranslate(t *testing.T) {
	s := NewSegment(1, 2, 3, 4)
	r := s.Reversed()
	assert.Equal(t, s.Start, r.End)
	assert.Equal(t, s.End, r.Start)

	moved := s.Translate(V(1, -1))
	assert.True(t, moved.ApproxEqual(NewSegment(2, 1, 4, 3), 0))
}

func TestProjectionHelpers(t *testing.T) {
	origin := V(0, 0)
	u := V(1, 0)

	assert.InDelta(t, 3.0, Project(V(3, 7), origin, u), 1e-12)
	assert.InDelta(t, 7.0, PerpDistance(V(3, 7), origin, u), 1e-12)
	assert.InDelta(t, 7.0, PerpDistance(V(3, -7), origin, u), 1e-12)
}

func TestIntervalOverlap(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, lo, hi float64
		want           float64
	}{
		{"inside", 2, 4, 0, 10, 2},
		{"covering", -5, 15, 0, 10, 10},
		{"reversed labels", 4, 2, 0, 10, 2},
		{"partial left", -3, 3, 0, 10, 3},
		{"disjoint", 11, 14, 0, 10, 0},
		{"touching", 10, 12, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IntervalOverlap(tt.a0, tt.a1, tt.lo, tt.hi), 1e-12)
		})
	}
}

func TestToPercent(t *testing.T) {
	assert.Equal(t, 0, ToPercent(-0.3))
	assert.Equal(t, 95, ToPercent(0.949))
	assert.Equal(t, 100, ToPercent(1.7))
}

func TestRotate(t *testing.T) {
	r := Rotate(V(1, 0), 90)
	assert.True(t, ApproxEqual(V(0, 1), r, 1e-12))
	assert.True(t, ApproxEqual(DirectionFromDeg(30), Rotate(V(1, 0), 30), 1e-12))
}
