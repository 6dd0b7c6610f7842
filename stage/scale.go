package stage

import (
	"math"
	"time"

	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// ScaleDef configures an axis-aligned trigger zone that stretches sticks passing through it
type ScaleDef struct {
	Center        [2]float64    `toml:"center"`
	HalfX         float64       `toml:"half_x"`
	HalfY         float64       `toml:"half_y"`
	Multiplier    float64       `toml:"multiplier"`
	Duration      time.Duration `toml:"duration"`
	RestoreOnExit bool          `toml:"restore_on_exit"`
}

func DefaultScale() ScaleDef {
	return ScaleDef{
		Multiplier:    parameter.ScaleZoneMultiplier,
		Duration:      parameter.ScaleZoneDuration,
		RestoreOnExit: true,
	}
}

// Scalable is a falling body whose length a zone can ease
type Scalable interface {
	ID() uint64
	Segment() vmath.Segment
	Simulated() bool
	ScaleTo(target, duration float64)
}

// ScaleZone scales sticks on entry and optionally restores them on exit
// Entry and exit are edges of the stick segment touching the zone rectangle
type ScaleZone struct {
	def    ScaleDef
	min    vmath.Vec2
	max    vmath.Vec2
	inside map[uint64]bool
}

func NewScaleZone(def ScaleDef) *ScaleZone {
	c := vmath.Vec2(def.Center)
	h := vmath.V(math.Abs(def.HalfX), math.Abs(def.HalfY))
	return &ScaleZone{def: def, min: c.Sub(h), max: c.Add(h), inside: make(map[uint64]bool)}
}

// Bounds returns the lower-left and upper-right corners
func (z *ScaleZone) Bounds() (vmath.Vec2, vmath.Vec2) { return z.min, z.max }

// Update applies enter and exit edges for the live sticks; sticks no longer listed are forgotten
func (z *ScaleZone) Update(sticks []Scalable) {
	seen := make(map[uint64]bool, len(sticks))
	dur := z.def.Duration.Seconds()
	for _, s := range sticks {
		id := s.ID()
		seen[id] = true
		if !s.Simulated() {
			continue
		}
		hit := segmentHitsBox(s.Segment(), z.min, z.max)
		was := z.inside[id]
		switch {
		case hit && !was:
			z.inside[id] = true
			s.ScaleTo(z.def.Multiplier, dur)
		case !hit && was:
			z.inside[id] = false
			if z.def.RestoreOnExit {
				s.ScaleTo(1, dur)
			}
		}
	}
	for id := range z.inside {
		if !seen[id] {
			delete(z.inside, id)
		}
	}
}

// Inside reports whether the stick with id is currently in the zone
func (z *ScaleZone) Inside(id uint64) bool { return z.inside[id] }

// segmentHitsBox clips the segment against the rectangle (Liang-Barsky)
func segmentHitsBox(seg vmath.Segment, lo, hi vmath.Vec2) bool {
	d := seg.Vector()
	t0, t1 := 0.0, 1.0
	for axis := range 2 {
		p, q0, q1 := d[axis], lo[axis]-seg.Start[axis], hi[axis]-seg.Start[axis]
		if math.Abs(p) < vmath.Epsilon {
			if q0 > 0 || q1 < 0 {
				return false
			}
			continue
		}
		a, b := q0/p, q1/p
		if a > b {
			a, b = b, a
		}
		t0, t1 = max(t0, a), min(t1, b)
		if t0 > t1 {
			return false
		}
	}
	return true
}
