package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/touchplay/config"
	"github.com/lixenwraith/touchplay/engine"
	"github.com/lixenwraith/touchplay/journal"
	"github.com/lixenwraith/touchplay/logging"
	"github.com/lixenwraith/touchplay/play"
)

// tick is the fixed step of headless playback
const tick = 50 * time.Millisecond

// maxTicks bounds one attempt at ten minutes of game time
const maxTicks = int(10 * time.Minute / tick)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "playquiz: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := config.Flags("playquiz")
	check := fs.Bool("check", false, "validate the play and exit")
	dump := fs.Bool("dump", false, "print the play as TOML and exit")
	verbose := fs.BoolP("verbose", "v", false, "log to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	p, err := play.Load(cfg.Play.File)
	if err != nil {
		return err
	}

	switch {
	case *check:
		fmt.Fprintf(stdout, "ok: %s\n", summary(p))
		return nil
	case *dump:
		return play.Encode(stdout, p)
	}

	logger := zerolog.Nop()
	if *verbose {
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		logger = logging.Console(os.Stderr, level)
	}

	session, err := engine.NewSession(engine.SessionConfig{
		Tuning: cfg.EngineTuning(),
		Play:   p,
		Logger: &logger,
	})
	if err != nil {
		return err
	}

	var rec journal.Recorder = journal.NewMemory()
	if cfg.Journal.Enabled {
		if rec, err = journal.OpenSQLite(cfg.Journal.Path, logger); err != nil {
			return err
		}
	}
	defer rec.Close()
	session.Register(journal.NewHandler(rec, logger))

	fmt.Fprintf(stdout, "%s\n", summary(p))
	q := &quiz{
		session:  session,
		prompter: surveyPrompter{},
		out:      stdout,
		dt:       tick,
		maxTicks: maxTicks,
		newBar:   newProgressBar,
	}
	if err := q.run(); err != nil {
		return err
	}

	st, err := rec.Stats(p.Name)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d attempts, %d completed, %d failed, best score %d\n", st.Play, st.Attempts, st.Completed, st.Failed, st.BestScore)
	return nil
}

func summary(p *play.Play) string {
	decisions := 0
	for _, pp := range p.Players {
		for _, w := range pp.Path {
			if w.Decision {
				decisions++
			}
		}
	}
	return fmt.Sprintf("%q: %d paths, %d transfers, %d decision points, ball with %s",
		p.Name, len(p.Players), len(p.Transfers), decisions, p.CarrierID())
}
