package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/engine/fsm"
	"github.com/lixenwraith/touchplay/event"
	"github.com/lixenwraith/touchplay/system"
)

// PlayerView is the read-only state of one player
type PlayerView struct {
	ID          component.PlayerID
	Team        component.Team
	Number      int
	Position    mgl64.Vec2
	Facing      float64
	Moving      bool
	CarriesBall bool
	Cursor      int
	Path        []component.Waypoint
}

// Prompt is the decision awaiting a choice
type Prompt struct {
	Player   component.PlayerID
	Waypoint int
	Options  []component.Option
}

// Feedback describes how the last attempt ended while the feedback panel is up
type Feedback struct {
	Outcome   event.AttemptOutcome
	Chosen    component.Option
	Answer    component.Option
	Remaining time.Duration
}

// Snapshot is a copy of everything a front end needs to draw one frame
type Snapshot struct {
	Frame     int64
	Elapsed   time.Duration
	State     fsm.StateID
	StateName string
	PlayName  string

	Board   system.Scoreboard
	Players []PlayerView
	Ball    mgl64.Vec3
	Carrier component.PlayerID

	Prompt   *Prompt
	Feedback *Feedback

	// Designer only
	Selected component.PlayerID
	Draft    map[component.PlayerID][]component.Waypoint
}

// Snapshot copies the session state; nothing in it aliases live data
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     s.frame,
		Elapsed:   s.elapsed,
		State:     s.machine.StateID(),
		StateName: s.machine.StateName(),
		PlayName:  s.play.Name,
		Board:     s.board,
		Ball:      s.Ball.Position,
	}
	if s.Ball.Carrier != nil {
		snap.Carrier = s.Ball.Carrier.ID
	}

	for _, p := range s.Players() {
		snap.Players = append(snap.Players, PlayerView{
			ID:          p.ID,
			Team:        p.Team,
			Number:      p.Number,
			Position:    p.Position,
			Facing:      p.Facing,
			Moving:      p.Moving,
			CarriesBall: p.CarriesBall,
			Cursor:      p.Cursor,
			Path:        component.ClonePath(p.Path),
		})
	}

	switch snap.State {
	case StateDecisionPoint:
		if s.resolver.State() == system.ResolverAwaitingChoice {
			snap.Prompt = &Prompt{
				Player:   s.resolver.Player().ID,
				Waypoint: s.resolver.Waypoint(),
				Options:  s.resolver.Options(),
			}
		}
	case StateFeedback:
		fb := &Feedback{Outcome: s.outcome, Remaining: s.feedback.Remaining()}
		if s.resolver.State() == system.ResolverResolved {
			fb.Chosen = s.resolver.Last().Option
			for _, o := range s.resolver.Options() {
				if o.Correct {
					fb.Answer = o
				}
			}
		}
		snap.Feedback = fb
	case StatePlayDesigner:
		if s.designer != nil {
			snap.Selected, _ = s.designer.Selected()
			draft := s.designer.Draft()
			snap.Draft = make(map[component.PlayerID][]component.Waypoint, len(draft.Players))
			for _, pp := range draft.Players {
				snap.Draft[pp.ID] = pp.Path
			}
		}
	}
	return snap
}
