package draw

import (
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// Drawer turns press/drag/release into a growing stick
// The pointer only steers the direction; length grows at ExtendSpeed while held
// Not safe for concurrent use
type Drawer struct {
	cfg      Config
	override StartOverride
	defDir   vmath.Vec2

	enabled bool
	drawing bool
	start   vmath.Vec2
	dir     vmath.Vec2
	length  float64
	strokes int
}

// NewDrawer creates a disabled drawer; override may be nil for free starts
func NewDrawer(cfg Config, override StartOverride) *Drawer {
	dir, ok := vmath.Unit(vmath.Vec2(cfg.DefaultDirection), vmath.Epsilon)
	if !ok {
		dir = vmath.V(parameter.DefaultDirectionX, parameter.DefaultDirectionY)
	}
	return &Drawer{cfg: cfg, override: override, defDir: dir}
}

// Press begins a stroke, returns false when input is gated or the start is rejected
func (d *Drawer) Press(p vmath.Vec2) bool {
	if !d.enabled || d.drawing {
		return false
	}
	if d.cfg.MaxStrokes > 0 && d.strokes >= d.cfg.MaxStrokes {
		return false
	}

	start := p
	if d.override != nil {
		s, ok := d.override.OverrideStart(p)
		if !ok {
			return false
		}
		start = s
	}

	d.drawing = true
	d.start = start
	d.dir = d.defDir
	d.length = 0
	return true
}

// Aim steers the growth direction toward p, ignored when p sits on the start point
func (d *Drawer) Aim(p vmath.Vec2) {
	if !d.drawing {
		return
	}
	delta := p.Sub(d.start)
	if delta.Dot(delta) <= parameter.MinAimDistanceSq {
		return
	}
	if u, ok := vmath.Unit(delta, 0); ok {
		d.dir = u
	}
}

// Update grows the stick; length never shrinks
func (d *Drawer) Update(dt float64) {
	if !d.drawing || dt <= 0 {
		return
	}
	d.length += d.cfg.ExtendSpeed * dt
}

// Release ends the stroke; ok=false when nothing was drawn or the stick is too short
func (d *Drawer) Release() (vmath.Segment, bool) {
	if !d.drawing {
		return vmath.Segment{}, false
	}
	seg := d.segment()
	d.drawing = false
	d.strokes++
	if d.length <= parameter.MinSegmentLength {
		return vmath.Segment{}, false
	}
	return seg, true
}

// Current returns the in-progress stick
func (d *Drawer) Current() (vmath.Segment, bool) {
	if !d.drawing {
		return vmath.Segment{}, false
	}
	return d.segment(), true
}

func (d *Drawer) segment() vmath.Segment {
	return vmath.Segment{Start: d.start, End: d.start.Add(d.dir.Mul(d.length))}
}

// SetEnabled gates input; disabling cancels a stroke in progress
func (d *Drawer) SetEnabled(enabled bool) {
	d.enabled = enabled
	if !enabled {
		d.drawing = false
	}
}

func (d *Drawer) Enabled() bool { return d.enabled }
func (d *Drawer) Drawing() bool { return d.drawing }

// Strokes returns the number of completed strokes
func (d *Drawer) Strokes() int { return d.strokes }

// Remaining returns strokes left, -1 when unlimited
func (d *Drawer) Remaining() int {
	if d.cfg.MaxStrokes <= 0 {
		return -1
	}
	return max(d.cfg.MaxStrokes-d.strokes, 0)
}
