package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/engine"
	"github.com/lixenwraith/touchplay/event"
	"github.com/lixenwraith/touchplay/play"
)

// errStalled is returned when a playback neither finishes nor asks for a decision
var errStalled = errors.New("playback did not finish")

// Prompter asks the user for input between ticks
type Prompter interface {
	Choose(p engine.Prompt) (int, error)
	Again() (bool, error)
}

// Progress shows how far the ball has travelled up the pitch
type Progress interface {
	Set(n int) error
	Clear() error
	Finish() error
}

type surveyPrompter struct{}

func (surveyPrompter) Choose(p engine.Prompt) (int, error) {
	var idx int
	prompt := &survey.Select{
		Message: fmt.Sprintf("%s has the ball. What now?", p.Player),
		Options: lo.Map(p.Options, func(o component.Option, _ int) string { return o.Label }),
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return idx, nil
}

func (surveyPrompter) Again() (bool, error) {
	again := false
	prompt := &survey.Confirm{Message: "Run the play again?", Default: true}
	if err := survey.AskOne(prompt, &again); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return again, nil
}

// quiz drives a session headlessly at a fixed tick
type quiz struct {
	session  *engine.Session
	prompter Prompter
	out      io.Writer
	dt       time.Duration
	maxTicks int
	newBar   func(max int) Progress
}

func newProgressBar(max int) Progress {
	return progressbar.Default(int64(max), "ball carried")
}

// depth is how far up the pitch the play's paths reach from the kickoff ball position
func depth(p *play.Play, startZ float64) int {
	deepest := startZ
	for _, pp := range p.Players {
		for _, w := range pp.Path {
			deepest = math.Min(deepest, w.Z)
		}
	}
	return max(1, int(math.Ceil(startZ-deepest)))
}

// attempt runs one practice attempt to its feedback screen
func (q *quiz) attempt() (event.AttemptOutcome, error) {
	if err := q.session.StartPractice(); err != nil {
		return "", err
	}

	startZ := q.session.Snapshot().Ball[2]
	total := depth(q.session.Play(), startZ)
	bar := q.newBar(total)

	for tick := 0; tick < q.maxTicks; tick++ {
		q.session.Update(q.dt)
		snap := q.session.Snapshot()
		_ = bar.Set(min(total, max(0, int(startZ-snap.Ball[2]))))

		switch snap.State {
		case engine.StateDecisionPoint:
			_ = bar.Clear()
			idx, err := q.prompter.Choose(*snap.Prompt)
			if err != nil {
				return "", err
			}
			out, err := q.session.ChooseIndex(idx)
			if err != nil {
				return "", err
			}
			if out.Correct {
				fmt.Fprintf(q.out, "correct: %s\n", out.Option.Label)
			}

		case engine.StateFeedback:
			_ = bar.Finish()
			fmt.Fprintln(q.out)
			q.report(snap)
			// Let the feedback timer return to the menu so the score carries over
			if !engine.StepUntil(q.session, q.dt, q.maxTicks, engine.InState(engine.StateMainMenu)) {
				return "", errStalled
			}
			return snap.Feedback.Outcome, nil
		}
	}
	q.session.ResetGame()
	return "", errStalled
}

func (q *quiz) report(snap engine.Snapshot) {
	fb := snap.Feedback
	switch fb.Outcome {
	case event.AttemptCompleted:
		fmt.Fprintf(q.out, "play complete, score %d (%d/%d decisions)\n", snap.Board.Score, snap.Board.DecisionsCorrect, snap.Board.DecisionsSeen)
	case event.AttemptFailed:
		fmt.Fprintf(q.out, "wrong call: %s, better was %s\n", fb.Chosen.Label, fb.Answer.Label)
	}
}

// run repeats attempts while the user wants more
func (q *quiz) run() error {
	for {
		if _, err := q.attempt(); err != nil {
			return err
		}
		again, err := q.prompter.Again()
		if err != nil || !again {
			return err
		}
	}
}
