package judge

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/stick-fit/parameter"
)

// ProgressPolicy selects which tracked stick drives the progress stream
type ProgressPolicy uint8

const (
	// ProgressLatest reports the most recently released stick
	ProgressLatest ProgressPolicy = iota
	// ProgressBest reports the stick with the highest running best
	ProgressBest
)

var progressPolicyNames = map[ProgressPolicy]string{
	ProgressLatest: "latest",
	ProgressBest:   "best",
}

func (p ProgressPolicy) String() string {
	if s, ok := progressPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("ProgressPolicy(%d)", p)
}

func (p ProgressPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *ProgressPolicy) UnmarshalText(text []byte) error {
	for k, v := range progressPolicyNames {
		if strings.EqualFold(v, string(text)) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown progress policy %q", text)
}

// FailurePolicy decides what happens when a stick leaves the play area without clearing
type FailurePolicy uint8

const (
	// FailureNone drops the stick silently, the session never fails
	FailureNone FailurePolicy = iota
	// FailureReport emits one failed progress message for the dropped stick
	FailureReport
)

var failurePolicyNames = map[FailurePolicy]string{
	FailureNone:   "none",
	FailureReport: "report",
}

func (p FailurePolicy) String() string {
	if s, ok := failurePolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("FailurePolicy(%d)", p)
}

func (p FailurePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *FailurePolicy) UnmarshalText(text []byte) error {
	for k, v := range failurePolicyNames {
		if strings.EqualFold(v, string(text)) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown failure policy %q", text)
}

// SnapAxes selects which parts of the winning stick's transform are forced to the target
type SnapAxes struct {
	Length   bool `toml:"length"`
	X        bool `toml:"x"`
	Y        bool `toml:"y"`
	Rotation bool `toml:"rotation"`
}

// AllAxes snaps everything
func AllAxes() SnapAxes {
	return SnapAxes{Length: true, X: true, Y: true, Rotation: true}
}

// Config holds the judge tuning supplied at initialization
type Config struct {
	LengthTolerancePercent           float64        `toml:"length_tolerance_percent"`
	AngleToleranceDeg                float64        `toml:"angle_tolerance_deg"`
	PerpendicularToleranceMultiplier float64        `toml:"perpendicular_tolerance_multiplier"`
	FailYThreshold                   float64        `toml:"fail_y_threshold"`
	Snap                             SnapAxes       `toml:"snap"`
	Progress                         ProgressPolicy `toml:"progress_policy"`
	Failure                          FailurePolicy  `toml:"failure_policy"`
}

// DefaultConfig returns the stock tuning: ±5% length, 6°, 1.0 perpendicular multiplier
func DefaultConfig() Config {
	return Config{
		LengthTolerancePercent:           parameter.LengthTolerancePercent,
		AngleToleranceDeg:                parameter.AngleToleranceDeg,
		PerpendicularToleranceMultiplier: parameter.PerpendicularToleranceMultiplier,
		FailYThreshold:                   parameter.FailYThreshold,
		Snap:                             AllAxes(),
		Progress:                         ProgressLatest,
		Failure:                          FailureNone,
	}
}

// Validate checks value ranges, all violations are reported together
func (c Config) Validate() error {
	var errs []error
	if !(c.LengthTolerancePercent >= 0 && c.LengthTolerancePercent <= parameter.MaxLengthTolerancePercent) {
		errs = append(errs, fmt.Errorf("length_tolerance_percent %v outside [0, %v]",
			c.LengthTolerancePercent, parameter.MaxLengthTolerancePercent))
	}
	if !(c.AngleToleranceDeg >= 0 && c.AngleToleranceDeg <= parameter.MaxAngleToleranceDeg) {
		errs = append(errs, fmt.Errorf("angle_tolerance_deg %v outside [0, %v]",
			c.AngleToleranceDeg, parameter.MaxAngleToleranceDeg))
	}
	if !(c.PerpendicularToleranceMultiplier > 0) {
		errs = append(errs, fmt.Errorf("perpendicular_tolerance_multiplier %v must be positive",
			c.PerpendicularToleranceMultiplier))
	}
	if math.IsNaN(c.FailYThreshold) || math.IsInf(c.FailYThreshold, 0) {
		errs = append(errs, fmt.Errorf("fail_y_threshold %v must be finite", c.FailYThreshold))
	}
	if _, ok := progressPolicyNames[c.Progress]; !ok {
		errs = append(errs, fmt.Errorf("invalid progress policy %d", c.Progress))
	}
	if _, ok := failurePolicyNames[c.Failure]; !ok {
		errs = append(errs, fmt.Errorf("invalid failure policy %d", c.Failure))
	}
	return errors.Join(errs...)
}

// Tolerance extracts the evaluator tolerances
func (c Config) Tolerance() Tolerance {
	return Tolerance{
		LengthPercent:  c.LengthTolerancePercent,
		AngleDeg:       c.AngleToleranceDeg,
		PerpMultiplier: c.PerpendicularToleranceMultiplier,
	}
}

// ClearThreshold is the running-best overlap needed to clear
// Coupled to the length band so a single parameter moves both bars
func (c Config) ClearThreshold() float64 {
	return 1 - c.LengthTolerancePercent
}
