package parameter

// Movement
const (
	// PlayerSpeed is the default run speed in world units per second
	PlayerSpeed = 5.0

	// ArrivalThreshold is the distance under which a player snaps onto its waypoint
	ArrivalThreshold = 0.1

	// PlayerPickRadius is the designer hit-test radius around a player in world units
	PlayerPickRadius = 1.5

	// TeamSize is the number of players per side
	TeamSize = 6
)

// Ball carry offset relative to the carrier (x, y, z), rotated by carrier facing
const (
	BallHandOffsetX = 0.0
	BallHandOffsetY = 2.5
	BallHandOffsetZ = 0.8

	// BallRestHeight is the ball height before it is first attached
	BallRestHeight = 1.0
)

// Pitch dimensions in world units (x across, z along)
const (
	PitchWidth  = 70.0
	PitchLength = 100.0
)

// HomeKickoffZ is the home line offset from halfway; the away side mirrors every z
const HomeKickoffZ = 5.0

// FormationSlot is a named kickoff position relative to the team line
type FormationSlot struct {
	Name string
	X    float64
	DZ   float64
}

// Formation lists the six slots in player-number order (number = index + 1)
var Formation = [TeamSize]FormationSlot{
	{"left wing", -15, 0},
	{"left centre", -7.5, -5},
	{"middle", 0, -7},
	{"right centre", 7.5, -5},
	{"right wing", 15, 0},
	{"dummy half", 0, 8},
}

// DummyHalfNumber is the player number that holds the ball at kickoff
const DummyHalfNumber = 6
