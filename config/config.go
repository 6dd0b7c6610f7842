// Package config loads the stick-fit TOML file: judge tuning, physics, drawing,
// audio, run flow and the stage list
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/stick-fit/audio"
	"github.com/lixenwraith/stick-fit/draw"
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/physics"
	"github.com/lixenwraith/stick-fit/stage"
)

// DefaultPath is tried when no -config flag is given
const DefaultPath = "config/stick-fit.toml"

var (
	ErrInvalid    = errors.New("config: invalid")
	ErrUnknownKey = errors.New("config: unknown key")
)

// Run controls stage flow
type Run struct {
	ScoreAttack      bool          `toml:"score_attack"`
	TimeLimit        time.Duration `toml:"time_limit"`
	Shuffle          bool          `toml:"shuffle"`
	Seed             uint64        `toml:"seed"` // 0 seeds from the clock
	FirstStage       string        `toml:"first_stage"`
	Countdown        time.Duration `toml:"countdown"`
	ClearDelay       time.Duration `toml:"clear_delay"`
	FailRestart      bool          `toml:"fail_restart"`
	FailRestartDelay time.Duration `toml:"fail_restart_delay"`
}

// File is the whole configuration document
type File struct {
	Judge   judge.Config       `toml:"judge"`
	Physics physics.Config     `toml:"physics"`
	Draw    draw.Config        `toml:"draw"`
	Audio   audio.Config       `toml:"audio"`
	Run     Run                `toml:"run"`
	Stages  []stage.Definition `toml:"stage"`
}

// Default returns the built-in configuration
func Default() *File {
	return &File{
		Judge:   judge.DefaultConfig(),
		Physics: physics.DefaultConfig(),
		Draw:    draw.DefaultConfig(),
		Audio:   audio.DefaultConfig(),
		Run: Run{
			TimeLimit:        parameter.ScoreAttackTimeLimit,
			Shuffle:          true,
			Countdown:        parameter.CountdownDuration,
			ClearDelay:       parameter.ClearCutInDelay,
			FailRestartDelay: parameter.FailRestartDelay,
		},
		Stages: stage.Builtin(),
	}
}

// Decode reads a TOML document over the defaults
// A document with [[stage]] tables replaces the built-in stage list
func Decode(r io.Reader) (*File, error) {
	f := Default()
	f.Stages = nil

	md, err := toml.NewDecoder(r).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if len(f.Stages) == 0 {
		f.Stages = stage.Builtin()
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads the file at path
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadAuto loads with priority: customPath > DefaultPath > built-in defaults
func LoadAuto(customPath string) (*File, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if info, err := os.Stat(DefaultPath); err == nil && !info.IsDir() {
		return Load(DefaultPath)
	}
	return Default(), nil
}

// Write encodes f as TOML, used to dump a starting config
func Write(w io.Writer, f *File) error {
	return toml.NewEncoder(w).Encode(f)
}

// Validate checks every section, all problems are reported together
func (f *File) Validate() error {
	var errs []error
	section := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("[%s]: %w", name, err))
		}
	}
	section("judge", f.Judge.Validate())
	section("physics", f.Physics.Validate())
	section("draw", f.Draw.Validate())
	section("audio", f.Audio.Validate())
	section("run", f.Run.validate())

	if len(f.Stages) == 0 {
		errs = append(errs, errors.New("no stages"))
	}
	seen := make(map[string]bool, len(f.Stages))
	for _, def := range f.Stages {
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
		}
		if def.Name != "" && seen[def.Name] {
			errs = append(errs, fmt.Errorf("duplicate stage %q", def.Name))
		}
		seen[def.Name] = true
	}
	if name := f.Run.FirstStage; name != "" && !seen[name] {
		errs = append(errs, fmt.Errorf("[run]: first_stage %q not defined", name))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (r Run) validate() error {
	var errs []error
	if r.ScoreAttack && r.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("time_limit %v must be positive for score attack", r.TimeLimit))
	}
	for name, d := range map[string]time.Duration{
		"countdown":          r.Countdown,
		"clear_delay":        r.ClearDelay,
		"fail_restart_delay": r.FailRestartDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s %v must not be negative", name, d))
		}
	}
	return errors.Join(errs...)
}

// StageIndex returns the position of the named stage, -1 when absent
func (f *File) StageIndex(name string) int {
	return slices.IndexFunc(f.Stages, func(d stage.Definition) bool { return d.Name == name })
}
