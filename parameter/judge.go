package parameter

// Judge tolerances, defaults for judge.Config
const (
	// LengthTolerancePercent is the symmetric band around length ratio 1.0 (0.05 = ±5%)
	// The overlap bar to clear is 1 - LengthTolerancePercent
	LengthTolerancePercent = 0.05

	// AngleToleranceDeg is the max angular deviation, direction sign ignored
	AngleToleranceDeg = 6.0

	// PerpendicularToleranceMultiplier scales half the target thickness into the off-axis tolerance
	PerpendicularToleranceMultiplier = 1.0

	// FailYThreshold is the world Y below which a tracked stick is abandoned
	FailYThreshold = -10.0

	// MaxLengthTolerancePercent caps the configurable length band
	MaxLengthTolerancePercent = 0.2

	// MaxAngleToleranceDeg caps the configurable angle tolerance
	MaxAngleToleranceDeg = 30.0
)

// Geometry floors
const (
	// MinSegmentLength is the length under which a segment has no usable direction
	MinSegmentLength = 0.0001

	// MinTargetThickness is the fallback thickness for a target built from a flat shape
	MinTargetThickness = 0.0001

	// MinEvalThickness is the thickness floor used by the perpendicular check
	MinEvalThickness = 0.01

	// MinPerpMultiplier is the floor applied to the perpendicular tolerance multiplier
	MinPerpMultiplier = 0.01
)
