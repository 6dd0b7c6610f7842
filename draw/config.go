package draw

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// Config tunes stick drawing, decoded from the [draw] table
type Config struct {
	ExtendSpeed      float64    `toml:"extend_speed"`      // world units per second while held
	DefaultDirection [2]float64 `toml:"default_direction"` // growth direction before the pointer moves
	MaxStrokes       int        `toml:"max_strokes"`       // strokes per stage, 0 is unlimited
}

func DefaultConfig() Config {
	return Config{
		ExtendSpeed:      parameter.ExtendSpeedPerSecond,
		DefaultDirection: [2]float64{parameter.DefaultDirectionX, parameter.DefaultDirectionY},
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.ExtendSpeed <= 0 {
		errs = append(errs, fmt.Errorf("extend_speed %v must be positive", c.ExtendSpeed))
	}
	if _, ok := vmath.Unit(vmath.Vec2(c.DefaultDirection), vmath.Epsilon); !ok {
		errs = append(errs, fmt.Errorf("default_direction %v must be non-zero", c.DefaultDirection))
	}
	if c.MaxStrokes < 0 {
		errs = append(errs, fmt.Errorf("max_strokes %d must not be negative", c.MaxStrokes))
	}
	return errors.Join(errs...)
}
