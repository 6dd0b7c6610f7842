package game

import (
	"github.com/lixenwraith/stick-fit/audio"
	"github.com/lixenwraith/stick-fit/event"
	"github.com/lixenwraith/stick-fit/parameter"
)

func registerHandlers(r *event.Router[*Game]) {
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventStickReleased}, Fn: handleStickReleased})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventJudgeSuspend}, Fn: handleJudgeSuspend})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventFitProgress}, Fn: handleFitProgress})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventStageCleared}, Fn: handleStageCleared})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventStickFailed}, Fn: handleStickFailed})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventSoundRequest}, Fn: handleSoundRequest})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventStageAdvance}, Fn: handleStageAdvance})
	r.Register(event.HandlerFunc[*Game]{Types: []event.EventType{event.EventRunFinished}, Fn: handleRunFinished})
}

// handleStickReleased spawns the falling body and puts it under judgment
func handleStickReleased(g *Game, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.StickReleasedPayload)
	if !ok || g.phase != PhasePlaying {
		return
	}
	stick, err := g.world.Spawn(p.Segment)
	if err != nil {
		g.logf("release dropped: %v", err)
		return
	}
	if _, ok := g.judge.Track(stick); !ok {
		return
	}
	g.emitSound(audio.SoundRelease)
}

func handleJudgeSuspend(g *Game, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.JudgeSuspendPayload)
	if !ok {
		return
	}
	g.judge.SetSuspended(p.Suspended)
	g.statSuspended.Store(p.Suspended)
}

// handleFitProgress keeps the HUD value and ticks a sound as the best overlap climbs
func handleFitProgress(g *Game, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.FitProgressPayload)
	if !ok {
		return
	}
	g.progress = p.Progress
	g.hasProgress = true
	if p.Progress.Cleared {
		return
	}
	if p.Progress.MaxPercent >= g.soundPercent+parameter.ProgressSoundStep {
		g.soundPercent = p.Progress.MaxPercent
		g.emitSound(audio.SoundProgress)
	}
}

// handleStageCleared plays the clear sound once, freezes the stage and schedules the next one
func handleStageCleared(g *Game, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.StageClearedPayload)
	if !ok || p.Cleared.SessionID != g.judge.SessionID() || g.clearSounded {
		return
	}
	g.clearSounded = true
	g.emitSound(audio.SoundClear)

	g.stage.Stop()
	g.drawer.SetEnabled(false)
	g.statClears.Add(1)
	g.logf("stage %q cleared at frame %d", p.Stage, p.Cleared.Frame)

	if g.phase == PhaseFinished {
		return
	}
	g.phase = PhaseCleared
	g.run.StageCleared()
	g.scheduleAdvance(g.cfg.Run.ClearDelay, false)
}

func handleStickFailed(g *Game, ev event.GameEvent) {
	if _, ok := ev.Payload.(*event.StickFailedPayload); !ok {
		return
	}
	g.emitSound(audio.SoundFail)
	if g.cfg.Run.FailRestart && g.phase == PhasePlaying && !g.advancePending {
		g.drawer.SetEnabled(false)
		g.scheduleAdvance(g.cfg.Run.FailRestartDelay, true)
	}
}

func handleSoundRequest(g *Game, ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		g.player.Play(p.Sound)
	}
}

// handleStageAdvance defers the load until dispatch completes
func handleStageAdvance(g *Game, ev event.GameEvent) {
	if _, ok := ev.Payload.(*event.StageAdvancePayload); !ok || g.phase == PhaseFinished {
		return
	}
	g.loadPending = true
}

func handleRunFinished(g *Game, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.RunFinishedPayload)
	if !ok {
		return
	}
	g.phase = PhaseFinished
	g.drawer.SetEnabled(false)
	g.advancePending = false
	g.loadPending = false
	g.result = &RunResult{Cleared: p.Cleared, Elapsed: p.Elapsed}
	g.logf("score attack finished: %d cleared in %v", p.Cleared, p.Elapsed)
}
