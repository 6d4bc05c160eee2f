package component

import "github.com/go-gl/mathgl/mgl64"

// Ball tracks possession; it has no path of its own
// Carrier is a relation, the ball owns no player
type Ball struct {
	Carrier  *Player
	Position mgl64.Vec3
}

// NewBall creates a loose ball resting at the given height above the centre spot
func NewBall(restHeight float64) *Ball {
	return &Ball{Position: mgl64.Vec3{0, restHeight, 0}}
}
