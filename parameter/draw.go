package parameter

// Stick drawing
const (
	// ExtendSpeedPerSecond is the stick growth rate while the pointer is held (world units/s)
	ExtendSpeedPerSecond = 2.0

	// MinAimDistanceSq is the squared pointer distance under which the aim direction is kept
	MinAimDistanceSq = 0.000001

	// GuideVerticalOffset places the start guide above the target start
	GuideVerticalOffset = 2.0

	// GuideRadius is the click radius of the start guide marker
	GuideRadius = 0.3
)

// DefaultDirectionX and DefaultDirectionY give the growth direction before the pointer moves
const (
	DefaultDirectionX = 1.0
	DefaultDirectionY = 0.0
)
