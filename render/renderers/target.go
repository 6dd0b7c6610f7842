package renderers

import (
	"math"

	"github.com/lixenwraith/stick-fit/render"
	"github.com/lixenwraith/stick-fit/vmath"
)

// TargetRenderer shades the target band and strokes its centre line
type TargetRenderer struct{}

func NewTargetRenderer() *TargetRenderer { return &TargetRenderer{} }

func (r *TargetRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	if !v.TargetOK || v.TargetAlpha <= 0 {
		return
	}
	seg := v.Target.Segment
	dir, ok := seg.Direction(1e-6)
	if !ok {
		return
	}
	normal := vmath.V(-dir.Y(), dir.X())

	// One shaded pass per row-sized step across the band
	half := v.Target.Thickness / 2
	step := 1 / ctx.Viewport.Scale * ctx.Viewport.Aspect / 2
	passes := int(math.Ceil(half / step))
	for i := -passes; i <= passes; i++ {
		off := float64(i) * step
		if math.Abs(off) > half {
			off = math.Copysign(half, off)
		}
		render.ShadeSegment(buf, ctx.Viewport, seg.Translate(normal.Mul(off)), render.RgbTarget, 0.6*v.TargetAlpha)
	}

	edge := render.Blend(render.RgbBackground, render.RgbTargetEdge, v.TargetAlpha)
	render.DrawSegment(buf, ctx.Viewport, seg, edge)
}
