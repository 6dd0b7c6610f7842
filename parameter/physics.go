package parameter

// Falling stick physics, defaults for physics.Config
const (
	// Gravity is the world gravity magnitude (units/s², pointing -Y)
	Gravity = 9.81

	// GravityScale multiplies Gravity for released sticks
	GravityScale = 2.5

	// LinearDamping is the per-second linear velocity decay factor
	LinearDamping = 0.2

	// AngularDamping is the per-second angular velocity decay factor
	AngularDamping = 0.2

	// ReleaseSpin is the angular velocity (deg/s) given to a stick on release
	ReleaseSpin = 0.0

	// CullMargin is how far below the fail threshold a stick is destroyed outright
	CullMargin = 5.0

	// MaxStepDelta clamps a single integration step (seconds)
	MaxStepDelta = 0.1
)

// MaxFallSpeed caps the linear speed of a falling stick (units/s)
const MaxFallSpeed = 60.0
