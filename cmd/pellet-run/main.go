package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pellet-run/audio"
	"github.com/lixenwraith/pellet-run/engine"
	"github.com/lixenwraith/pellet-run/input"
	"github.com/lixenwraith/pellet-run/parameter"
	"github.com/lixenwraith/pellet-run/render"
)

var (
	seedFlag     = flag.Int64("seed", 0, "World seed, 0 derives one from the clock")
	logFileFlag  = flag.String("log", "", "Diagnostics log file, empty disables logging")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if *logFileFlag == "" {
		return log
	}
	f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v (continuing without logging)\n", err)
		return log
	}
	log.SetOutput(f)

	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := newLogger()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, otherwise raw mode mangles it
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\npellet-run crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio failure is never fatal; the game runs silent
	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing silent")
	}
	defer sounds.Cleanup()
	if *muteFlag {
		sounds.ToggleMute()
	}

	world := engine.NewWorld(seed, engine.NewSystemTimeProvider(), log)
	renderer := render.NewRenderer(screen)
	keys := input.DefaultKeyTable()

	log.WithField("seed", seed).Info("run started")

	// Input polling in its own goroutine; the loop selects on events and
	// the two tickers
	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	tickTicker := time.NewTicker(parameter.TickInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	lastFrame := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch tev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				in := keys.Decode(tev)
				switch in.Type {
				case input.IntentQuit:
					log.WithField("score", world.State().Score).Info("run ended")
					return
				case input.IntentSteer:
					world.Steer(in.Dir)
				case input.IntentTogglePause:
					world.TogglePause()
				case input.IntentToggleMute:
					sounds.ToggleMute()
				case input.IntentToggleDiag:
					renderer.ToggleDiagnostics()
				case input.IntentConfirm:
					switch world.State().Phase {
					case engine.PhaseUpgrading:
						world.AdvanceLevel()
					case engine.PhaseGameOver:
						// Fresh run, same session
						world = engine.NewWorld(time.Now().UnixNano(), engine.NewSystemTimeProvider(), log)
					}
				case input.IntentSelect:
					if world.State().Phase == engine.PhaseUpgrading {
						catalogue := engine.Catalogue()
						if in.Slot < len(catalogue) {
							world.Purchase(catalogue[in.Slot])
						}
					}
				}
			}

		case <-tickTicker.C:
			world.Tick()
			sounds.HandleEvents(world.ConsumeEvents())

		case <-frameTicker.C:
			now := time.Now()
			renderer.RenderFrame(world, now.Sub(lastFrame))
			lastFrame = now
		}
	}
}
