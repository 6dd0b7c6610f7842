package game

import (
	"time"

	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/vmath"
)

// View is a render snapshot, copied under the game lock
type View struct {
	Frame      int64
	Stage      string
	StageIndex int
	StageCount int
	Phase      Phase

	Target      judge.Target
	TargetOK    bool
	TargetAlpha float64 // 0..1, below 1 while a blink gate fades
	Suspended   bool

	Guide       vmath.Vec2
	GuideRadius float64
	HasGuide    bool

	ZoneMin vmath.Vec2
	ZoneMax vmath.Vec2
	HasZone bool

	Sticks   []vmath.Segment
	Snapped  int // index into Sticks of the snapped winner, -1 when none
	Preview  vmath.Segment
	Drawing  bool
	Strokes  int // remaining, -1 when unlimited
	Progress judge.FitProgress
	HasFit   bool

	Countdown   int
	ScoreAttack bool
	Remaining   time.Duration
	Cleared     int
	Finished    bool
}

// View captures the current frame for the renderer
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := View{
		Frame:       g.frame,
		Stage:       g.stage.Name(),
		StageIndex:  g.stageIdx,
		StageCount:  len(g.cfg.Stages),
		Phase:       g.phase,
		TargetAlpha: 1,
		Suspended:   g.judge.Suspended(),
		Snapped:     -1,
		Strokes:     g.drawer.Remaining(),
		Progress:    g.progress,
		HasFit:      g.hasProgress,
		ScoreAttack: g.scoreAttack,
		Remaining:   g.run.Remaining(),
		Cleared:     g.run.Cleared(),
		Finished:    g.phase == PhaseFinished,
	}
	if g.phase == PhaseCountdown {
		v.Countdown = g.countdown.Seconds()
	}

	v.Target, v.TargetOK = g.stage.Target.CurrentTarget()
	if b := g.stage.Blink; b != nil {
		v.TargetAlpha = b.Alpha()
	}
	if guide := g.stage.Guide; guide != nil {
		v.Guide, v.GuideRadius, v.HasGuide = guide.Marker, guide.Radius, true
	}
	if zone := g.stage.Scale; zone != nil {
		v.ZoneMin, v.ZoneMax = zone.Bounds()
		v.HasZone = true
	}

	sticks := g.world.Sticks()
	v.Sticks = make([]vmath.Segment, 0, len(sticks))
	for i, s := range sticks {
		v.Sticks = append(v.Sticks, s.Segment())
		if g.judge.Snapped() && !s.Simulated() {
			v.Snapped = i
		}
	}
	v.Preview, v.Drawing = g.drawer.Current()
	return v
}
