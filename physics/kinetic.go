package physics

import "github.com/lixenwraith/stick-fit/vmath"

// Kinetic is the linear state of a body in world units
type Kinetic struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Accel vmath.Vec2
}

// Integrate performs semi-implicit Euler: v = v + a*dt; p = p + v*dt
func Integrate(k *Kinetic, dt float64) vmath.Vec2 {
	k.Vel = k.Vel.Add(k.Accel.Mul(dt))
	k.Pos = k.Pos.Add(k.Vel.Mul(dt))
	return k.Pos
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *Kinetic, dv vmath.Vec2) {
	k.Vel = k.Vel.Add(dv)
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, v vmath.Vec2) {
	k.Vel = v
}

// Damp applies drag-style decay: v / (1 + damping*dt)
func Damp(v, damping, dt float64) float64 {
	if damping <= 0 {
		return v
	}
	return v / (1 + damping*dt)
}
