package event

// EventType represents the type of session event
type EventType int

const (
	// EventTick is reserved for FSM auto-transitions evaluated every update
	EventTick EventType = iota

	// === Intents (FSM triggers from the front end) ===

	// EventStartPractice begins playback of the current play
	// Trigger: Menu key, quiz runner | Consumer: FSM | Payload: nil
	EventStartPractice

	// EventOpenDesigner enters play designer mode
	// Trigger: Menu key | Consumer: FSM | Payload: nil
	EventOpenDesigner

	// EventExitDesigner leaves designer mode
	// Trigger: Escape in designer | Consumer: FSM | Payload: nil
	EventExitDesigner

	// EventGameReset zeroes the scoreboard and returns to the menu from any state
	// Trigger: Reset key | Consumer: FSM | Payload: nil
	EventGameReset

	// === Internal FSM triggers ===

	// EventDecisionReached signals the carrier halted on a decision waypoint
	// Trigger: Session update | Consumer: FSM | Payload: nil
	EventDecisionReached

	// EventDecisionCorrect resumes play after a correct choice
	// Trigger: Resolver | Consumer: FSM | Payload: nil
	EventDecisionCorrect

	// EventDecisionWrong abandons play after an incorrect choice
	// Trigger: Resolver | Consumer: FSM | Payload: nil
	EventDecisionWrong

	// EventPlayComplete signals every path ran out with nothing pending
	// Trigger: Session update | Consumer: FSM | Payload: nil
	EventPlayComplete

	// EventFeedbackExpired fires when the feedback timer runs out
	// Trigger: Deferred timer | Consumer: FSM | Payload: nil
	EventFeedbackExpired

	// === Notifications (front end, audio, journal) ===

	// EventStateChanged reports a session state transition
	// Trigger: Session | Consumer: Renderer, logging | Payload: *StateChangedPayload
	EventStateChanged EventType = iota + 100

	// EventDecisionPresented asks the user to choose
	// Trigger: Resolver.Present | Consumer: Renderer, quiz runner | Payload: *DecisionPresentedPayload
	EventDecisionPresented

	// EventDecisionOutcome reports a resolved choice and the updated score
	// Trigger: Resolver.Choose | Consumer: Renderer, audio | Payload: *DecisionOutcomePayload
	EventDecisionOutcome

	// EventBallTransferred reports a scripted pass
	// Trigger: Script | Consumer: Audio | Payload: *BallTransferredPayload
	EventBallTransferred

	// EventPathComplete reports a player ran out of waypoints
	// Trigger: Session update | Consumer: logging | Payload: *PathCompletePayload
	EventPathComplete

	// EventAttemptFinished reports the end of one playback attempt
	// Trigger: Session on leaving playback | Consumer: Journal | Payload: *AttemptFinishedPayload
	EventAttemptFinished
)

// GameEvent is a queued event with its frame stamp
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
