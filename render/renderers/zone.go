package renderers

import "github.com/lixenwraith/stick-fit/render"

// ZoneRenderer tints the scale trigger zone
type ZoneRenderer struct{}

func NewZoneRenderer() *ZoneRenderer { return &ZoneRenderer{} }

func (r *ZoneRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	if !v.HasZone {
		return
	}
	vp := ctx.Viewport
	x0, y1 := vp.ToCell(v.ZoneMin)
	x1, y0 := vp.ToCell(v.ZoneMax)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vp.InPlayArea(x, y) {
				buf.SetBgOnly(x, y, render.RgbZone, 0.35)
			}
		}
	}
}
