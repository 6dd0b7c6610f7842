package draw

import (
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// StartOverride constrains where a stroke may begin
// ok=false rejects the press; otherwise the stroke starts at the returned point
type StartOverride interface {
	OverrideStart(press vmath.Vec2) (start vmath.Vec2, ok bool)
}

// StartGuide is a marker above the target start; strokes must begin on it
type StartGuide struct {
	Marker vmath.Vec2
	Radius float64
}

// NewStartGuide places the marker verticalOffset above targetStart
// Non-positive radius falls back to the default click radius
func NewStartGuide(targetStart vmath.Vec2, verticalOffset, radius float64) *StartGuide {
	if radius <= 0 {
		radius = parameter.GuideRadius
	}
	return &StartGuide{
		Marker: targetStart.Add(vmath.V(0, verticalOffset)),
		Radius: radius,
	}
}

// OverrideStart snaps presses within Radius onto the marker
func (g *StartGuide) OverrideStart(press vmath.Vec2) (vmath.Vec2, bool) {
	if press.Sub(g.Marker).Len() > g.Radius {
		return vmath.Vec2{}, false
	}
	return g.Marker, true
}
