package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stick-fit/render"
)

// HUDRenderer draws the stage line and the fit line in the reserved top rows
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer { return &HUDRenderer{} }

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	for y := 0; y < ctx.Viewport.Top; y++ {
		buf.FillRow(y, render.RgbHUDBg)
	}

	x := buf.Text(1, 0, fmt.Sprintf("STAGE %d/%d %s", v.StageIndex+1, v.StageCount, v.Stage), render.RgbText, tcell.AttrBold)
	if v.ScoreAttack {
		x = buf.Text(x+2, 0, fmt.Sprintf("TIME %s", formatRemaining(v.Remaining)), render.RgbText, 0)
		x = buf.Text(x+2, 0, fmt.Sprintf("CLEARED %d", v.Cleared), render.RgbClear, 0)
	}
	if ctx.Muted {
		buf.Text(x+2, 0, "MUTE", render.RgbDim, 0)
	}

	fit := "FIT --"
	fitColor := render.RgbDim
	if v.HasFit {
		fit = fmt.Sprintf("FIT %3d%%  BEST %3d%%", v.Progress.Percent, v.Progress.MaxPercent)
		fitColor = render.RgbText
		if v.Progress.Failed {
			fitColor = render.RgbFail
		}
	}
	x = buf.Text(1, 1, fit, fitColor, 0)

	strokes := "STROKES ∞"
	if v.Strokes >= 0 {
		strokes = fmt.Sprintf("STROKES %d", v.Strokes)
	}
	x = buf.Text(x+2, 1, strokes, render.RgbDim, 0)
	if v.Suspended {
		buf.Text(x+2, 1, "WAIT", render.RgbGuide, 0)
	}
}

func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(100 * time.Millisecond)
	return fmt.Sprintf("%d.%d", int(d.Seconds()), int(d.Milliseconds()/100)%10)
}
