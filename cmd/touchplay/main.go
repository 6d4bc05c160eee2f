package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/touchplay/audio"
	"github.com/lixenwraith/touchplay/config"
	"github.com/lixenwraith/touchplay/core"
	"github.com/lixenwraith/touchplay/engine"
	"github.com/lixenwraith/touchplay/input"
	"github.com/lixenwraith/touchplay/journal"
	"github.com/lixenwraith/touchplay/logging"
	"github.com/lixenwraith/touchplay/play"
	"github.com/lixenwraith/touchplay/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "touchplay: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("touchplay")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.Setup(cfg.Log.Dir, cfg.Log.Level, cfg.Log.Enabled)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	p, err := play.Load(cfg.Play.File)
	if err != nil {
		return err
	}

	keys, err := input.LoadKeyFile(cfg.Input.Keymap)
	if err != nil {
		return err
	}

	clock := engine.WallClock{}
	session, err := engine.NewSession(engine.SessionConfig{
		Tuning: cfg.EngineTuning(),
		Play:   p,
		Logger: &logger,
		Clock:  clock,
	})
	if err != nil {
		return err
	}

	rec, err := openJournal(cfg, logger)
	if err != nil {
		return err
	}
	defer rec.Close()
	session.Register(journal.NewHandler(rec, logger))

	var sound input.SoundToggle
	if cfg.Audio.Enabled {
		if out, err := audio.NewSpeakerOutput(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer out.Close()
			cues := audio.NewCuePlayer(out, logger)
			session.Register(cues)
			sound = cues
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	orchestrator, status := render.NewPipeline(screen)
	session.Register(status)

	ctrl := input.NewController(input.ControllerConfig{
		Session:  session,
		Machine:  input.NewMachine(keys),
		Project:  func() input.Projector { return orchestrator.View() },
		Status:   status,
		Sound:    sound,
		SavePath: cfg.Play.Save,
		Logger:   logger,
	})

	logger.Info().Str("play", p.Name).Int("frameRate", cfg.Tuning.FrameRate).Msg("touchplay started")
	loop := engine.NewLoop(session, clock, cfg.Tuning.FrameRate)
	runLoop(screen, loop, orchestrator, ctrl, session)
	logger.Info().Uint64("frames", loop.Frames()).Int("score", session.Scoreboard().Score).Msg("touchplay stopped")
	return nil
}

// openJournal opens the SQLite journal, or an in-memory one when recording is off
func openJournal(cfg *config.Config, logger zerolog.Logger) (journal.Recorder, error) {
	if !cfg.Journal.Enabled {
		return journal.NewMemory(), nil
	}
	return journal.OpenSQLite(cfg.Journal.Path, logger)
}

func runLoop(screen tcell.Screen, loop *engine.Loop, orchestrator *render.Orchestrator, ctrl *input.Controller, session *engine.Session) {
	eventChan := make(chan tcell.Event, 256)
	// Input polling forwards events only; the loop goroutine owns the session
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(loop.Interval())
	defer frameTicker.Stop()

	orchestrator.RenderFrame(session.Snapshot())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			in := ctrl.Handle(ev)
			if in == nil {
				continue
			}
			switch in.Type {
			case input.IntentQuit:
				return
			case input.IntentResize:
				orchestrator.Resize()
			}
			orchestrator.RenderFrame(session.Snapshot())

		case <-frameTicker.C:
			loop.Tick()
			orchestrator.RenderFrame(session.Snapshot())
		}
	}
}
