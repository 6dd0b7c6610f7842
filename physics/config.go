package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stick-fit/parameter"
)

// Config tunes the falling-stick bodies, decoded from the [physics] table
type Config struct {
	Gravity        float64 `toml:"gravity"`
	GravityScale   float64 `toml:"gravity_scale"`
	LinearDamping  float64 `toml:"linear_damping"`
	AngularDamping float64 `toml:"angular_damping"`
	ReleaseSpin    float64 `toml:"release_spin"` // deg/s given on release
	MaxSpeed       float64 `toml:"max_speed"`
}

func DefaultConfig() Config {
	return Config{
		Gravity:        parameter.Gravity,
		GravityScale:   parameter.GravityScale,
		LinearDamping:  parameter.LinearDamping,
		AngularDamping: parameter.AngularDamping,
		ReleaseSpin:    parameter.ReleaseSpin,
		MaxSpeed:       parameter.MaxFallSpeed,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity %v must not be negative", c.Gravity))
	}
	if c.GravityScale < 0 {
		errs = append(errs, fmt.Errorf("gravity_scale %v must not be negative", c.GravityScale))
	}
	if c.LinearDamping < 0 || c.AngularDamping < 0 {
		errs = append(errs, fmt.Errorf("damping must not be negative (linear %v, angular %v)",
			c.LinearDamping, c.AngularDamping))
	}
	if c.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max_speed %v must be positive", c.MaxSpeed))
	}
	return errors.Join(errs...)
}

// fallAccel is the constant acceleration of a released stick
func (c Config) fallAccel() float64 {
	return -c.Gravity * c.GravityScale
}
