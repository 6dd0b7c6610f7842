package stage

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// ErrInvalidDefinition wraps every stage definition problem
var ErrInvalidDefinition = errors.New("stage: invalid definition")

// BoxDef describes the target as a rotated rectangle
type BoxDef struct {
	Center   [2]float64 `toml:"center"`
	HalfX    float64    `toml:"half_x"`
	HalfY    float64    `toml:"half_y"`
	Rotation float64    `toml:"rotation"`    // degrees
	Angle    float64    `toml:"local_angle"` // extra rotation of the length axis
}

// GuideDef places a start guide above the target start; zero values use defaults
type GuideDef struct {
	VerticalOffset float64 `toml:"vertical_offset"`
	Radius         float64 `toml:"radius"`
}

// Definition is one stage as written in the config file
// The target is either Start/End or Box
type Definition struct {
	Name      string          `toml:"name"`
	Start     *[2]float64     `toml:"start"`
	End       *[2]float64     `toml:"end"`
	Box       *BoxDef         `toml:"box"`
	Thickness float64         `toml:"thickness"`
	Guide     *GuideDef       `toml:"guide"`
	Wave      *WaveDef        `toml:"wave"`
	Slide     *SlideDef       `toml:"slide"`
	Blink     *BlinkDef       `toml:"blink"`
	Scale     *ScaleDef       `toml:"scale"`
	Snap      *judge.SnapAxes `toml:"snap"`
}

// BaseTarget returns the target before any motion is applied
func (d Definition) BaseTarget() (judge.Target, error) {
	switch {
	case d.Box != nil && (d.Start != nil || d.End != nil):
		return judge.Target{}, errors.New("target has both box and start/end")
	case d.Box != nil:
		b := d.Box
		return judge.TargetFromBox(vmath.Vec2(b.Center), b.HalfX, b.HalfY, b.Rotation, b.Angle), nil
	case d.Start != nil && d.End != nil:
		seg := vmath.Segment{Start: vmath.Vec2(*d.Start), End: vmath.Vec2(*d.End)}
		return judge.NewTarget(seg, d.Thickness), nil
	default:
		return judge.Target{}, errors.New("target needs start and end or a box")
	}
}

// Validate reports every problem of the definition together
func (d Definition) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if t, err := d.BaseTarget(); err != nil {
		errs = append(errs, err)
	} else if t.Length() <= parameter.MinSegmentLength {
		errs = append(errs, fmt.Errorf("target %v is degenerate", t.Segment))
	}
	if d.Thickness < 0 || math.IsNaN(d.Thickness) {
		errs = append(errs, fmt.Errorf("thickness %v must not be negative", d.Thickness))
	}
	if d.Wave != nil && d.Slide != nil {
		errs = append(errs, errors.New("wave and slide are exclusive"))
	}
	if w := d.Wave; w != nil && (w.PeriodX < 0 || w.PeriodY < 0) {
		errs = append(errs, fmt.Errorf("wave periods must not be negative (%v, %v)", w.PeriodX, w.PeriodY))
	}
	if s := d.Slide; s != nil && s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("slide duration %v must be positive", s.Duration))
	}
	if b := d.Blink; b != nil && (b.Visible <= 0 || b.Hidden < 0 || b.Fade < 0) {
		errs = append(errs, fmt.Errorf("blink durations invalid (visible %v, hidden %v, fade %v)", b.Visible, b.Hidden, b.Fade))
	}
	if z := d.Scale; z != nil {
		if !(z.HalfX > 0 && z.HalfY > 0) {
			errs = append(errs, fmt.Errorf("scale zone extents must be positive (%v, %v)", z.HalfX, z.HalfY))
		}
		if !(z.Multiplier > 0) {
			errs = append(errs, fmt.Errorf("scale multiplier %v must be positive", z.Multiplier))
		}
		if z.Duration < 0 {
			errs = append(errs, fmt.Errorf("scale duration %v must not be negative", z.Duration))
		}
	}
	if g := d.Guide; g != nil && g.Radius < 0 {
		errs = append(errs, fmt.Errorf("guide radius %v must not be negative", g.Radius))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDefinition, d.Name, err)
	}
	return nil
}

func pair(x, y float64) *[2]float64 { return &[2]float64{x, y} }

// Builtin returns the stock stage set used when the config file names none
func Builtin() []Definition {
	wave := DefaultWave()
	slide := DefaultSlide()
	blink := DefaultBlink()
	grow := DefaultScale()
	grow.Center, grow.HalfX, grow.HalfY, grow.RestoreOnExit = [2]float64{0, 0}, 7, 0.5, false
	return []Definition{
		{Name: "bar", Start: pair(-5, 0), End: pair(5, 0), Thickness: 0.6},
		{Name: "tilt", Box: &BoxDef{Center: [2]float64{0, -1}, HalfX: 4, HalfY: 0.3, Rotation: 25}},
		{Name: "guide", Start: pair(-4, -2), End: pair(4, -2), Thickness: 0.6, Guide: &GuideDef{}},
		{Name: "tsu", Start: pair(-5, 0), End: pair(3, 0), Thickness: 0.6, Wave: &wave},
		{Name: "slide", Start: pair(-3, -1), End: pair(3, -1), Thickness: 0.6, Slide: &slide},
		{Name: "blink", Start: pair(-4, 1), End: pair(4, -1), Thickness: 0.6, Blink: &blink},
		{Name: "grow", Start: pair(-4.5, -3), End: pair(4.5, -3), Thickness: 0.6, Scale: &grow},
	}
}
