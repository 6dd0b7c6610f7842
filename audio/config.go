package audio

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stick-fit/parameter"
)

// Config holds audio settings, decoded from the [audio] table
type Config struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	MasterVolume float64 `toml:"master_volume"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
}

// Validate reports all range violations at once
func (c Config) Validate() error {
	var errs []error
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate %d must be positive", c.SampleRate))
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master_volume %v outside [0, 1]", c.MasterVolume))
	}
	return errors.Join(errs...)
}
