package event

import (
	"time"

	"github.com/lixenwraith/touchplay/component"
)

// StateChangedPayload carries the state names of a transition
type StateChangedPayload struct {
	From string
	To   string
}

// DecisionPresentedPayload carries the frozen option set for the prompt
type DecisionPresentedPayload struct {
	Player   component.PlayerID
	Waypoint int
	Options  []component.Option
}

// DecisionOutcomePayload carries the resolved choice
type DecisionOutcomePayload struct {
	Player  component.PlayerID
	Option  component.Option
	Correct bool
	Score   int
}

// BallTransferredPayload carries a scripted pass
type BallTransferredPayload struct {
	From component.PlayerID
	To   component.PlayerID
}

// PathCompletePayload identifies the player that ran out of waypoints
type PathCompletePayload struct {
	Player component.PlayerID
}

// AttemptOutcome is how an attempt ended
type AttemptOutcome string

const (
	AttemptCompleted AttemptOutcome = "completed"
	AttemptFailed    AttemptOutcome = "failed"
	AttemptAborted   AttemptOutcome = "aborted"
)

// AttemptFinishedPayload summarises one playback attempt
type AttemptFinishedPayload struct {
	Play             string
	Outcome          AttemptOutcome
	StartedAt        time.Time
	FinishedAt       time.Time
	DecisionsSeen    int
	DecisionsCorrect int
	Score            int
}
