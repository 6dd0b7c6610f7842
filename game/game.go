// Package game wires drawing, physics, judgment and stage flow into one fixed-tick loop
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stick-fit/audio"
	"github.com/lixenwraith/stick-fit/config"
	"github.com/lixenwraith/stick-fit/draw"
	"github.com/lixenwraith/stick-fit/event"
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/physics"
	"github.com/lixenwraith/stick-fit/stage"
	"github.com/lixenwraith/stick-fit/status"
	"github.com/lixenwraith/stick-fit/vmath"
)

var (
	ErrNoStages     = errors.New("game: no stages configured")
	ErrUnknownStage = errors.New("game: unknown stage")
)

// Phase is the flow state of the current stage
type Phase uint8

const (
	PhaseCountdown Phase = iota
	PhasePlaying
	PhaseCleared
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseCleared:
		return "cleared"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// Options are runtime overrides and collaborators, zero values use the config and defaults
type Options struct {
	FirstStage  string
	ScoreAttack bool
	Player      audio.Player
	Status      *status.Registry
	Logf        func(format string, args ...any)
	Now         func() time.Time
	Rand        *rand.Rand
}

// RunResult is the outcome of a finished score attack run
type RunResult struct {
	Cleared int
	Elapsed time.Duration
}

// Game owns one play session across stages
// Input methods are called from the input goroutine, Tick from the scheduler; both take mu
type Game struct {
	mu sync.Mutex

	cfg    *config.File
	logf   func(format string, args ...any)
	now    func() time.Time
	player audio.Player
	status *status.Registry

	queue  *event.EventQueue
	router *event.Router[*Game]

	run             *stage.Run
	scoreAttack     bool
	countdownPlayed bool
	result          *RunResult

	stageIdx  int
	stage     *stage.Stage
	judge     *judge.Judge
	drawer    *draw.Drawer
	world     *physics.World
	countdown *stage.Countdown
	phase     Phase
	frame     int64

	progress     judge.FitProgress
	hasProgress  bool
	soundPercent int
	clearSounded bool

	advanceIn      time.Duration
	advancePending bool
	advanceRestart bool
	loadPending    bool

	statJudgeTicks *atomic.Int64
	statTracked    *atomic.Int64
	statBest       *status.AtomicFloat
	statClears     *atomic.Int64
	statSticks     *atomic.Int64
	statEvents     *atomic.Int64
	statStage      *status.AtomicString
	statSession    *status.AtomicString
	statSuspended  *atomic.Bool
}

// New builds the session and loads the first stage
func New(cfg *config.File, opts Options) (*Game, error) {
	if cfg == nil || len(cfg.Stages) == 0 {
		return nil, ErrNoStages
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.ScoreAttack && cfg.Run.TimeLimit <= 0 {
		return nil, fmt.Errorf("%w: [run]: time_limit %v must be positive for score attack", config.ErrInvalid, cfg.Run.TimeLimit)
	}

	g := &Game{
		cfg:         cfg,
		logf:        opts.Logf,
		now:         opts.Now,
		player:      opts.Player,
		status:      opts.Status,
		queue:       event.NewEventQueue(),
		scoreAttack: cfg.Run.ScoreAttack || opts.ScoreAttack,
	}
	if g.logf == nil {
		g.logf = log.Printf
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.player == nil {
		g.player = &audio.Null{}
	}
	if g.status == nil {
		g.status = status.NewRegistry()
	}
	g.cacheMetrics()

	first := opts.FirstStage
	if first == "" {
		first = cfg.Run.FirstStage
	}
	firstIdx := 0
	if first != "" {
		if firstIdx = cfg.StageIndex(first); firstIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, first)
		}
	}

	rng := opts.Rand
	if rng == nil && cfg.Run.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Run.Seed, cfg.Run.Seed))
	}
	limit := time.Duration(0)
	shuffle := false
	if g.scoreAttack {
		limit = cfg.Run.TimeLimit
		shuffle = cfg.Run.Shuffle && first == ""
	}
	g.run = stage.NewRun(len(cfg.Stages), firstIdx, limit, shuffle, rng)

	g.world = physics.NewWorld(cfg.Physics)
	g.router = event.NewRouter[*Game](g.queue)
	registerHandlers(g.router)

	if err := g.loadStage(g.run.Current()); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) cacheMetrics() {
	g.statJudgeTicks = g.status.Ints.Get(status.KeyJudgeTicks)
	g.statTracked = g.status.Ints.Get(status.KeyJudgeTracked)
	g.statBest = g.status.Floats.Get(status.KeyJudgeBestRatio)
	g.statClears = g.status.Ints.Get(status.KeyJudgeClears)
	g.statSticks = g.status.Ints.Get(status.KeyPhysicsSticks)
	g.statEvents = g.status.Ints.Get(status.KeyEngineEvents)
	g.statStage = g.status.Strings.Get(status.KeyStageName)
	g.statSession = g.status.Strings.Get(status.KeyJudgeSession)
	g.statSuspended = g.status.Bools.Get(status.KeyJudgeSuspended)
}

// loadStage builds a fresh target, drawer, world and judge for the stage at idx
func (g *Game) loadStage(idx int) error {
	if idx < 0 || idx >= len(g.cfg.Stages) {
		return fmt.Errorf("%w: index %d", ErrUnknownStage, idx)
	}
	st, err := stage.Build(g.cfg.Stages[idx])
	if err != nil {
		return err
	}

	jcfg := g.cfg.Judge
	jcfg.Snap = st.SnapAxes(jcfg.Snap)
	j, err := judge.New(jcfg, judge.Deps{
		Target: st.Target,
		Sink:   &queueSink{queue: g.queue, stage: st.Name(), frame: &g.frame},
		Now:    g.now,
		Logf:   g.logf,
	})
	if err != nil {
		return err
	}
	if st.Blink != nil {
		j.SetSuspended(!st.Blink.Visible())
	}

	// Stale events belong to the previous judge
	_ = g.queue.Consume()

	g.stageIdx = idx
	g.stage = st
	g.judge = j
	g.drawer = draw.NewDrawer(g.cfg.Draw, st.StartOverride())
	g.world.Clear()
	g.progress = judge.FitProgress{}
	g.hasProgress = false
	g.soundPercent = 0
	g.clearSounded = false
	g.advancePending = false
	g.loadPending = false

	countdown := g.cfg.Run.Countdown
	if g.scoreAttack && g.countdownPlayed {
		countdown = 0
	}
	g.countdown = stage.NewCountdown(countdown)
	g.phase = PhaseCountdown
	if g.countdown.Done() {
		g.beginPlay()
	}

	g.statStage.Store(st.Name())
	g.statSession.Store(j.SessionID())
	g.statSuspended.Store(j.Suspended())
	g.logf("stage %q loaded (session %s)", st.Name(), j.SessionID())
	return nil
}

func (g *Game) beginPlay() {
	g.phase = PhasePlaying
	g.drawer.SetEnabled(true)
	if !g.countdownPlayed {
		g.countdownPlayed = true
		g.run.StartTimer()
	}
}

// Press starts a stroke at the world point p
func (g *Game) Press(p vmath.Vec2) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return false
	}
	return g.drawer.Press(p)
}

// Aim steers the stroke toward the world point p
func (g *Game) Aim(p vmath.Vec2) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.drawer.Aim(p)
}

// Release ends the stroke and hands the stick to the next tick
func (g *Game) Release() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	seg, ok := g.drawer.Release()
	if !ok {
		return false
	}
	g.queue.Emit(event.EventStickReleased, &event.StickReleasedPayload{Segment: seg}, g.frame)
	return true
}

// Tick advances one fixed step
func (g *Game) Tick(dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.frame++
	sec := dt.Seconds()

	if g.phase == PhaseCountdown && g.countdown.Advance(dt) {
		g.beginPlay()
	}

	if g.phase != PhaseFinished {
		g.stage.Advance(sec)
		if b := g.stage.Blink; b != nil {
			if visible, changed := b.Advance(dt); changed {
				g.queue.Emit(event.EventJudgeSuspend, &event.JudgeSuspendPayload{Suspended: !visible}, g.frame)
			}
		}
		g.drawer.Update(sec)
		g.world.Step(sec)
		g.applyScaleZone()
	}

	// Input and gate events reach the judge in the same tick
	events := g.router.DispatchAll(g)

	if g.phase != PhaseFinished {
		g.judge.Tick(g.frame)
		g.statJudgeTicks.Add(1)
		g.world.Cull(g.cfg.Judge.FailYThreshold)
	}

	if g.advancePending {
		g.advanceIn -= dt
		if g.advanceIn <= 0 {
			g.advancePending = false
			g.queue.Emit(event.EventStageAdvance, &event.StageAdvancePayload{Restart: g.advanceRestart}, g.frame)
		}
	}

	if g.run.Advance(dt) {
		g.queue.Emit(event.EventRunFinished, &event.RunFinishedPayload{
			Cleared: g.run.Cleared(),
			Elapsed: g.run.Elapsed(),
		}, g.frame)
	}

	events += g.router.DispatchAll(g)

	if g.loadPending {
		if err := g.loadStage(g.run.Current()); err != nil {
			g.logf("stage load failed: %v", err)
			g.loadPending = false
		}
	}

	g.statEvents.Add(int64(events))
	g.statTracked.Store(int64(g.judge.Tracked()))
	g.statBest.Set(g.judge.BestRatio())
	g.statSticks.Store(int64(g.world.Len()))
}

// applyScaleZone lets the stage trigger zone stretch sticks passing through it
func (g *Game) applyScaleZone() {
	zone := g.stage.Scale
	if zone == nil {
		return
	}
	sticks := g.world.Sticks()
	scalable := make([]stage.Scalable, len(sticks))
	for i, s := range sticks {
		scalable[i] = s
	}
	zone.Update(scalable)
}

func (g *Game) scheduleAdvance(after time.Duration, restart bool) {
	g.advancePending = true
	g.advanceIn = after
	g.advanceRestart = restart
}

func (g *Game) emitSound(s audio.Sound) {
	g.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: s}, g.frame)
}

// Frame returns the number of ticks run
func (g *Game) Frame() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frame
}

// Result returns the score attack outcome once the run has finished
func (g *Game) Result() (RunResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.result == nil {
		return RunResult{}, false
	}
	return *g.result, true
}

// Status returns the metrics registry the game writes to
func (g *Game) Status() *status.Registry { return g.status }
