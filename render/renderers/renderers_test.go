package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/stick-fit/game"
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/render"
	"github.com/lixenwraith/stick-fit/vmath"
)

func frame(v game.View) (render.RenderContext, *render.RenderBuffer) {
	vp := render.NewViewport(60, 20)
	return render.RenderContext{View: v, Viewport: vp}, render.NewRenderBuffer(vp.Width, vp.Height)
}

func row(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := range w {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func playing() game.View {
	return game.View{Phase: game.PhasePlaying, Snapped: -1, Strokes: -1, TargetAlpha: 1, StageCount: 3}
}

func TestTargetRendererShadesBand(t *testing.T) {
	v := playing()
	v.Target = judge.NewTarget(vmath.NewSegment(-3, 0, 3, 0), 1)
	v.TargetOK = true
	ctx, buf := frame(v)

	NewTargetRenderer().Render(ctx, buf)

	x, y := ctx.Viewport.ToCell(vmath.V(0, 0))
	assert.Equal(t, '─', buf.Get(x, y).Rune)
	assert.NotEqual(t, render.RgbBackground, buf.Get(x, y).Bg)
	assert.Equal(t, render.RgbTargetEdge, buf.Get(x, y).Fg)

	// Outside the band stays clear
	assert.Equal(t, render.RgbBackground, buf.Get(x, y-3).Bg)
}

func TestTargetRendererHiddenWhenInactive(t *testing.T) {
	v := playing()
	v.Target = judge.NewTarget(vmath.NewSegment(-3, 0, 3, 0), 1)
	v.TargetOK = true
	v.TargetAlpha = 0
	ctx, buf := frame(v)

	NewTargetRenderer().Render(ctx, buf)
	x, y := ctx.Viewport.ToCell(vmath.V(0, 0))
	assert.Equal(t, rune(0), buf.Get(x, y).Rune)
}

func TestStickRendererHighlightsSnapped(t *testing.T) {
	v := playing()
	v.Sticks = []vmath.Segment{vmath.NewSegment(-2, 1, 2, 1), vmath.NewSegment(-2, -1, 2, -1)}
	v.Snapped = 1
	ctx, buf := frame(v)

	NewStickRenderer().Render(ctx, buf)

	x, y := ctx.Viewport.ToCell(vmath.V(0, 1))
	assert.Equal(t, render.RgbStick, buf.Get(x, y).Fg)
	x, y = ctx.Viewport.ToCell(vmath.V(0, -1))
	assert.Equal(t, render.RgbSnapped, buf.Get(x, y).Fg)
}

func TestPreviewOnlyWhileDrawing(t *testing.T) {
	v := playing()
	v.Preview = vmath.NewSegment(0, -2, 0, 2)
	ctx, buf := frame(v)

	p := NewPreviewRenderer()
	p.Render(ctx, buf)
	x, y := ctx.Viewport.ToCell(vmath.V(0, 0))
	assert.Equal(t, rune(0), buf.Get(x, y).Rune)

	ctx.View.Drawing = true
	p.Render(ctx, buf)
	assert.Equal(t, '│', buf.Get(x, y).Rune)
}

func TestGuideRendererMarker(t *testing.T) {
	v := playing()
	v.Guide, v.GuideRadius, v.HasGuide = vmath.V(-4, -1), 0.5, true
	ctx, buf := frame(v)

	NewGuideRenderer().Render(ctx, buf)
	x, y := ctx.Viewport.ToCell(v.Guide)
	assert.Equal(t, '◎', buf.Get(x, y).Rune)
}

func TestHUDRenderer(t *testing.T) {
	v := playing()
	v.Stage, v.StageIndex = "tilt", 1
	v.HasFit = true
	v.Progress = judge.FitProgress{Percent: 42, MaxPercent: 87}
	v.Strokes = 2
	v.ScoreAttack = true
	v.Remaining = 12300 * time.Millisecond
	v.Cleared = 4
	ctx, buf := frame(v)

	NewHUDRenderer().Render(ctx, buf)

	top := row(buf, 0)
	assert.Contains(t, top, "STAGE 2/3 tilt")
	assert.Contains(t, top, "TIME 12.3")
	assert.Contains(t, top, "CLEARED 4")

	fit := row(buf, 1)
	assert.Contains(t, fit, "FIT  42%")
	assert.Contains(t, fit, "BEST  87%")
	assert.Contains(t, fit, "STROKES 2")
	assert.Equal(t, render.RgbHUDBg, buf.Get(59, 1).Bg)
}

func TestHUDBeforeFirstStroke(t *testing.T) {
	ctx, buf := frame(playing())
	NewHUDRenderer().Render(ctx, buf)
	assert.Contains(t, row(buf, 1), "FIT --")
	assert.Contains(t, row(buf, 1), "STROKES ∞")
	assert.NotContains(t, row(buf, 0), "TIME")
}

func TestBannerRenderer(t *testing.T) {
	tests := []struct {
		name   string
		phase  game.Phase
		paused bool
		want   string
	}{
		{"countdown", game.PhaseCountdown, false, " 3 "},
		{"cleared", game.PhaseCleared, false, "CLEAR"},
		{"finished", game.PhaseFinished, false, "TIME UP  5 CLEARED"},
		{"paused wins", game.PhaseCleared, true, "PAUSED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := playing()
			v.Phase, v.Countdown, v.Cleared = tt.phase, 3, 5
			ctx, buf := frame(v)
			ctx.Paused = tt.paused

			NewBannerRenderer().Render(ctx, buf)
			y := ctx.Viewport.Top + (ctx.Viewport.Height-ctx.Viewport.Top)/4
			assert.Contains(t, row(buf, y), tt.want)
		})
	}

	ctx, buf := frame(playing())
	NewBannerRenderer().Render(ctx, buf)
	for y := range ctx.Viewport.Height {
		assert.Empty(t, strings.TrimSpace(row(buf, y)))
	}
}

func TestDebugRenderer(t *testing.T) {
	d := NewDebugRenderer(false)
	assert.False(t, d.IsVisible())
	d.Toggle()
	assert.True(t, d.IsVisible())

	ctx, buf := frame(playing())
	ctx.Metrics = map[string]string{"judge.ticks": "12", "engine.ticks": "40"}
	d.Render(ctx, buf)

	assert.Contains(t, row(buf, ctx.Viewport.Top), "engine.ticks 40")
	assert.Contains(t, row(buf, ctx.Viewport.Top+1), "judge.ticks 12")
}

func TestZoneRendererTintsArea(t *testing.T) {
	v := playing()
	v.ZoneMin, v.ZoneMax, v.HasZone = vmath.V(-2, -0.5), vmath.V(2, 0.5), true
	ctx, buf := frame(v)

	NewZoneRenderer().Render(ctx, buf)

	x, y := ctx.Viewport.ToCell(vmath.V(0, 0))
	assert.NotEqual(t, render.RgbBackground, buf.Get(x, y).Bg)
	x, y = ctx.Viewport.ToCell(vmath.V(5, 0))
	assert.Equal(t, render.RgbBackground, buf.Get(x, y).Bg)
}
