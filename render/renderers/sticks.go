package renderers

import (
	"github.com/lixenwraith/stick-fit/render"
)

// StickRenderer draws released sticks, highlighting the snapped one
type StickRenderer struct{}

func NewStickRenderer() *StickRenderer { return &StickRenderer{} }

func (r *StickRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i, s := range ctx.View.Sticks {
		fg := render.RgbStick
		if i == ctx.View.Snapped {
			fg = render.RgbSnapped
		}
		render.DrawSegment(buf, ctx.Viewport, s, fg)
	}
}

// PreviewRenderer draws the stroke while the button is held
type PreviewRenderer struct{}

func NewPreviewRenderer() *PreviewRenderer { return &PreviewRenderer{} }

func (r *PreviewRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.View.Drawing {
		return
	}
	render.DrawSegment(buf, ctx.Viewport, ctx.View.Preview, render.RgbPreview)
}
