package parameter

import "time"

// Scoring
const (
	// DecisionReward is added to the score for each correct decision
	DecisionReward = 10

	// FeedbackDelay is how long the feedback panel stays up before returning to the menu
	FeedbackDelay = 3 * time.Second
)

// Default decision options attached by the designer to a new decision waypoint.
// None is marked correct; the author picks one before saving.
var DesignerDefaultOptions = []struct {
	Label  string
	Action string
}{
	{"Pass left", "pass_left"},
	{"Pass right", "pass_right"},
	{"Run forward", "run_forward"},
}
