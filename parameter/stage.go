package parameter

import "time"

// Stage flow
const (
	// CountdownDuration gates input at stage start (3-2-1)
	CountdownDuration = 3 * time.Second

	// ClearCutInDelay is the pause between a clear and the next stage
	ClearCutInDelay = 2500 * time.Millisecond

	// FailRestartDelay is the pause before restarting a stage under the report failure policy
	FailRestartDelay = 500 * time.Millisecond

	// ScoreAttackTimeLimit is the default score attack run length
	ScoreAttackTimeLimit = 60 * time.Second
)

// Moving target (wave) defaults
const (
	MoverAmplitudeX   = 1.0
	MoverAmplitudeY   = 0.6
	MoverPeriodX      = 2.2
	MoverPeriodY      = 1.4
	MoverPhaseDelayY  = 0.2
	MoverLeftDistance = 0.8
)

// Blinking gate defaults
const (
	BlinkVisibleDuration = 2 * time.Second
	BlinkHiddenDuration  = 1500 * time.Millisecond
)

// BlinkFadeDuration is the fade-in/fade-out time around each visible phase
const BlinkFadeDuration = 300 * time.Millisecond

// Horizontal slide defaults
const (
	SlideDistance = 4.0
	SlideDuration = 4.0
)

// Scale trigger zone defaults
const (
	ScaleZoneMultiplier = 1.5
	ScaleZoneDuration   = 250 * time.Millisecond
)
