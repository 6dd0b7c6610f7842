package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the world-space point and direction type
type Vec2 = mgl64.Vec2

// Epsilon is the default float comparison threshold for world coordinates
const Epsilon = 1e-9

// V builds a Vec2
func V(x, y float64) Vec2 { return Vec2{x, y} }

// Unit returns the normalized vector, zero-safe
// ok is false when the magnitude is below minLen
func Unit(v Vec2, minLen float64) (u Vec2, ok bool) {
	l := v.Len()
	if l <= minLen {
		return Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Cross returns the z component of the 2-D cross product
func Cross(a, b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// PerpDistance returns the distance from p to the infinite line through origin along unitDir
// unitDir must be normalized
func PerpDistance(p, origin, unitDir Vec2) float64 {
	return math.Abs(Cross(p.Sub(origin), unitDir))
}

// Project returns the 1-D coordinate of p along unitDir with origin at 0
func Project(p, origin, unitDir Vec2) float64 {
	return p.Sub(origin).Dot(unitDir)
}

// IntervalOverlap returns the length of [min(a0,a1), max(a0,a1)] ∩ [lo, hi], never negative
func IntervalOverlap(a0, a1, lo, hi float64) float64 {
	minA, maxA := math.Min(a0, a1), math.Max(a0, a1)
	return math.Max(0, math.Min(maxA, hi)-math.Max(minA, lo))
}

// Clamp01 clamps x into [0, 1]
func Clamp01(x float64) float64 {
	return mgl64.Clamp(x, 0, 1)
}

// ToPercent converts a 0..1 ratio into a rounded integer percentage in [0, 100]
func ToPercent(ratio float64) int {
	return int(math.Round(Clamp01(ratio) * 100))
}

// DirectionFromDeg returns the unit vector at angleDeg, counter-clockwise from +X
func DirectionFromDeg(angleDeg float64) Vec2 {
	rad := mgl64.DegToRad(angleDeg)
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Rotate rotates v counter-clockwise by angleDeg
func Rotate(v Vec2, angleDeg float64) Vec2 {
	return mgl64.Rotate2D(mgl64.DegToRad(angleDeg)).Mul2x1(v)
}

// ApproxEqual reports whether both components differ by at most eps (absolute)
func ApproxEqual(a, b Vec2, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps
}
