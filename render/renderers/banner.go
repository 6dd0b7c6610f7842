package renderers

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stick-fit/game"
	"github.com/lixenwraith/stick-fit/render"
)

// BannerRenderer centres the countdown, clear and finish messages in the play area
type BannerRenderer struct{}

func NewBannerRenderer() *BannerRenderer { return &BannerRenderer{} }

func (r *BannerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	var text string
	fg := render.RgbText
	switch v.Phase {
	case game.PhaseCountdown:
		text = fmt.Sprintf(" %d ", v.Countdown)
	case game.PhaseCleared:
		text, fg = " CLEAR ", render.RgbClear
	case game.PhaseFinished:
		text, fg = fmt.Sprintf(" TIME UP  %d CLEARED ", v.Cleared), render.RgbGuide
	}
	if ctx.Paused {
		text, fg = " PAUSED ", render.RgbDim
	}
	if text == "" {
		return
	}

	vp := ctx.Viewport
	x := (vp.Width - utf8.RuneCountInString(text)) / 2
	y := vp.Top + (vp.Height-vp.Top)/4
	for i := range utf8.RuneCountInString(text) {
		buf.SetBgOnly(x+i, y, render.RgbHUDBg, 1)
	}
	buf.Text(x, y, text, fg, tcell.AttrBold)
}
