package parameter

// Render priorities, lower draws first
const (
	PriorityPitch   = 100
	PriorityPaths   = 200
	PriorityPlayers = 300
	PriorityBall    = 350
	PriorityPanels  = 400
	PriorityStatus  = 500
)
