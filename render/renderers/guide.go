package renderers

import (
	"github.com/lixenwraith/stick-fit/render"
	"github.com/lixenwraith/stick-fit/vmath"
)

// GuideRenderer marks the forced stroke start and its pick radius
type GuideRenderer struct{}

func NewGuideRenderer() *GuideRenderer { return &GuideRenderer{} }

func (r *GuideRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	if !v.HasGuide {
		return
	}
	vp := ctx.Viewport

	// Radius ring, sampled every 30 degrees
	if v.GuideRadius > 0 {
		for deg := 0.0; deg < 360; deg += 30 {
			p := v.Guide.Add(vmath.DirectionFromDeg(deg).Mul(v.GuideRadius))
			x, y := vp.ToCell(p)
			if vp.InPlayArea(x, y) {
				buf.SetFgOnly(x, y, '·', render.RgbDim, 0)
			}
		}
	}

	x, y := vp.ToCell(v.Guide)
	if vp.InPlayArea(x, y) {
		buf.SetFgOnly(x, y, '◎', render.RgbGuide, 0)
	}
}
