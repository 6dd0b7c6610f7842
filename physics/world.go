package physics

import (
	"errors"
	"slices"

	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// ErrDegenerate rejects sticks too short to have a direction
var ErrDegenerate = errors.New("physics: degenerate stick segment")

// World owns the falling sticks of one stage
// Not safe for concurrent use, driven from the tick
type World struct {
	cfg    Config
	sticks []*Stick
	nextID uint64
}

func NewWorld(cfg Config) *World {
	return &World{cfg: cfg}
}

// Spawn turns a released segment into a simulated stick
func (w *World) Spawn(seg vmath.Segment) (*Stick, error) {
	if seg.Length() <= parameter.MinSegmentLength {
		return nil, ErrDegenerate
	}
	w.nextID++
	s := &Stick{
		id:        w.nextID,
		kin:       Kinetic{Pos: seg.Midpoint(), Accel: vmath.V(0, w.cfg.fallAccel())},
		angleDeg:  seg.AngleDeg(),
		angVel:    w.cfg.ReleaseSpin,
		length:    seg.Length(),
		simulated: true,
	}
	w.sticks = append(w.sticks, s)
	return s, nil
}

// Step advances every simulated stick by dt seconds, clamped to MaxStepDelta
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	dt = min(dt, parameter.MaxStepDelta)

	for _, s := range w.sticks {
		if !s.Simulated() {
			continue
		}
		s.kin.Vel[0] = Damp(s.kin.Vel[0], w.cfg.LinearDamping, dt)
		s.kin.Vel[1] = Damp(s.kin.Vel[1], w.cfg.LinearDamping, dt)
		Integrate(&s.kin, dt)
		CapSpeed(&s.kin.Vel, w.cfg.MaxSpeed)

		s.angVel = Damp(s.angVel, w.cfg.AngularDamping, dt)
		s.angleDeg += s.angVel * dt
		s.scale.Advance(dt)
	}
}

// Cull destroys sticks whose centre is below floorY - CullMargin and drops destroyed sticks
// Returns the number removed
func (w *World) Cull(floorY float64) int {
	limit := floorY - parameter.CullMargin
	before := len(w.sticks)
	w.sticks = slices.DeleteFunc(w.sticks, func(s *Stick) bool {
		if s.kin.Pos[1] < limit {
			s.Destroy()
		}
		return s.destroyed
	})
	return before - len(w.sticks)
}

// Sticks returns a snapshot of live sticks in spawn order
func (w *World) Sticks() []*Stick {
	return slices.Clone(w.sticks)
}

func (w *World) Len() int { return len(w.sticks) }

// Clear destroys every stick
func (w *World) Clear() {
	for _, s := range w.sticks {
		s.Destroy()
	}
	w.sticks = w.sticks[:0]
}
