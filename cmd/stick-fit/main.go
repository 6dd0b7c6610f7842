package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stick-fit/audio"
	"github.com/lixenwraith/stick-fit/config"
	"github.com/lixenwraith/stick-fit/core"
	"github.com/lixenwraith/stick-fit/game"
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/render"
	"github.com/lixenwraith/stick-fit/render/renderers"
	"github.com/lixenwraith/stick-fit/status"
)

var (
	configFlag      = flag.String("config", "", "Config file (default "+config.DefaultPath+" if present)")
	stageFlag       = flag.String("stage", "", "Start at the named stage")
	scoreAttackFlag = flag.Bool("score-attack", false, "Timed run, clear as many stages as possible")
	debugFlag       = flag.Bool("debug", false, "Log to "+logDir+"/"+logFileName+" and show the metrics overlay")
	muteFlag        = flag.Bool("mute", false, "Disable sound effects")
	dumpConfigFlag  = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic recovery: reset the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dumpConfigFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	player := startAudio(cfg.Audio)
	defer player.Close()
	if *muteFlag {
		player.SetMuted(true)
	}

	reg := status.NewRegistry()
	g, err := game.New(cfg, game.Options{
		FirstStage:  *stageFlag,
		ScoreAttack: *scoreAttackFlag,
		Player:      player,
		Status:      reg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	if err := run(screen, g, player, reg); err != nil {
		log.Printf("run: %v", err)
	}
	if res, ok := g.Result(); ok {
		log.Printf("score attack: %d cleared in %s", res.Cleared, res.Elapsed)
	}
}

// startAudio falls back to a silent player when the speaker is unavailable
func startAudio(cfg audio.Config) audio.Player {
	if !cfg.Enabled {
		return &audio.Null{}
	}
	e := audio.NewEngine(cfg)
	if err := e.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
		return &audio.Null{}
	}
	return e
}

func run(screen tcell.Screen, g *game.Game, player audio.Player, reg *status.Registry) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := game.NewScheduler(g, game.NewPausableClock(time.Now), parameter.GameUpdateInterval, reg)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	orchestrator := render.NewRenderOrchestrator(screen)
	debugOverlay := renderers.NewDebugRenderer(*debugFlag)

	rendererList := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{renderers.NewZoneRenderer(), render.PriorityBackground},
		{renderers.NewTargetRenderer(), render.PriorityTarget},
		{renderers.NewGuideRenderer(), render.PriorityGuide},
		{renderers.NewStickRenderer(), render.PriorityEntities},
		{renderers.NewPreviewRenderer(), render.PriorityPreview},
		{renderers.NewHUDRenderer(), render.PriorityUI},
		{renderers.NewBannerRenderer(), render.PriorityOverlay},
		{debugOverlay, render.PriorityDebug},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	w, h := screen.Size()
	viewport := render.NewViewport(w, h)

	// Input polling interacts with the terminal directly
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var input strokeInput
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h = ev.Size()
				viewport = render.NewViewport(w, h)
				orchestrator.Resize(w, h)

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'p':
					if scheduler.IsPaused() {
						scheduler.Resume()
					} else {
						scheduler.Pause()
					}
				case ev.Rune() == 'm':
					player.SetMuted(!player.Muted())
				case ev.Rune() == 'd':
					debugOverlay.Toggle()
				}

			case *tcell.EventMouse:
				if scheduler.IsPaused() {
					continue
				}
				x, y := ev.Position()
				input.Handle(g, viewport.ToWorld(x, y), ev.Buttons()&tcell.Button1 != 0)
			}

		case <-frameTicker.C:
			rc := render.RenderContext{
				View:     g.View(),
				Viewport: viewport,
				Muted:    player.Muted(),
				Paused:   scheduler.IsPaused(),
			}
			if debugOverlay.IsVisible() {
				rc.Metrics = reg.Snapshot()
			}
			orchestrator.RenderFrame(rc)
		}
	}
}
