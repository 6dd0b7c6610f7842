package renderers

import (
	"sort"

	"github.com/lixenwraith/stick-fit/render"
)

// DebugRenderer lists the metrics snapshot down the right edge
type DebugRenderer struct {
	visible bool
}

func NewDebugRenderer(visible bool) *DebugRenderer { return &DebugRenderer{visible: visible} }

func (r *DebugRenderer) IsVisible() bool { return r.visible }

// Toggle flips visibility
func (r *DebugRenderer) Toggle() { r.visible = !r.visible }

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if len(ctx.Metrics) == 0 {
		return
	}
	keys := make([]string, 0, len(ctx.Metrics))
	width := 0
	for k, v := range ctx.Metrics {
		keys = append(keys, k)
		width = max(width, len(k)+len(v)+2)
	}
	sort.Strings(keys)

	x := ctx.Viewport.Width - width - 1
	y := ctx.Viewport.Top
	for _, k := range keys {
		if y >= ctx.Viewport.Height {
			return
		}
		next := buf.Text(x, y, k, render.RgbDim, 0)
		buf.Text(next+1, y, ctx.Metrics[k], render.RgbText, 0)
		y++
	}
}
