package physics

import "github.com/lixenwraith/stick-fit/vmath"

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	mag := vel.Len()
	if mag <= maxSpeed || mag == 0 {
		return false
	}
	*vel = vel.Mul(maxSpeed / mag)
	return true
}

// ScaleTween eases a multiplier toward a target with an out-quad curve
// The zero value holds 1
type ScaleTween struct {
	from, to float64
	elapsed  float64
	duration float64
	set      bool
}

// Value returns the current multiplier
func (t *ScaleTween) Value() float64 {
	if !t.set {
		return 1
	}
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	return t.from + (t.to-t.from)*outQuad(t.elapsed/t.duration)
}

// Start begins a tween from the current value, replacing any running one
func (t *ScaleTween) Start(target, duration float64) {
	from := t.Value()
	*t = ScaleTween{from: from, to: target, duration: duration, set: true}
}

// Advance moves the tween forward by dt seconds
func (t *ScaleTween) Advance(dt float64) {
	if t.set && dt > 0 {
		t.elapsed = min(t.elapsed+dt, max(t.duration, 0))
	}
}

// Active reports whether the value is still changing
func (t *ScaleTween) Active() bool { return t.set && t.elapsed < t.duration }

// Reset drops the tween and returns the value to 1
func (t *ScaleTween) Reset() { *t = ScaleTween{} }

func outQuad(x float64) float64 { return 1 - (1-x)*(1-x) }
