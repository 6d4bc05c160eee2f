package event

var typeToName = map[EventType]string{
	EventTick:              "Tick",
	EventStartPractice:     "StartPractice",
	EventOpenDesigner:      "OpenDesigner",
	EventExitDesigner:      "ExitDesigner",
	EventGameReset:         "GameReset",
	EventDecisionReached:   "DecisionReached",
	EventDecisionCorrect:   "DecisionCorrect",
	EventDecisionWrong:     "DecisionWrong",
	EventPlayComplete:      "PlayComplete",
	EventFeedbackExpired:   "FeedbackExpired",
	EventStateChanged:      "StateChanged",
	EventDecisionPresented: "DecisionPresented",
	EventDecisionOutcome:   "DecisionOutcome",
	EventBallTransferred:   "BallTransferred",
	EventPathComplete:      "PathComplete",
	EventAttemptFinished:   "AttemptFinished",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if n, ok := typeToName[et]; ok {
		return n
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

func (et EventType) String() string {
	return GetEventName(et)
}
