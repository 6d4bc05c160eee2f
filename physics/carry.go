package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/parameter"
)

// HandOffset is where a carried ball sits relative to an unrotated carrier
var HandOffset = mgl64.Vec3{
	parameter.BallHandOffsetX,
	parameter.BallHandOffsetY,
	parameter.BallHandOffsetZ,
}

// CarryPosition returns the world position of a ball held by p:
// carrier ground position plus offset rotated about Y by the carrier facing
func CarryPosition(p *component.Player, offset mgl64.Vec3) mgl64.Vec3 {
	rotated := mgl64.Rotate3DY(p.Facing).Mul3x1(offset)
	ground := mgl64.Vec3{p.Position[0], 0, p.Position[1]}
	return ground.Add(rotated)
}
