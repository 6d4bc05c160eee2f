package component

import "github.com/go-gl/mathgl/mgl64"

// Player holds positional and path-following state for one entity on the pitch
// Position is on the ground plane (x, z); height is implicit
type Player struct {
	ID     PlayerID
	Team   Team
	Number int

	Position mgl64.Vec2
	Facing   float64 // radians about Y, atan2(dx, dz) of last movement

	Path        []Waypoint
	Cursor      int
	Moving      bool
	CarriesBall bool
}

// NewPlayer creates a player at the origin with an empty path
func NewPlayer(team Team, number int) *Player {
	return &Player{
		ID:     NewPlayerID(team, number),
		Team:   team,
		Number: number,
	}
}

// SetPosition moves the player without touching path state
func (p *Player) SetPosition(x, z float64) {
	p.Position = mgl64.Vec2{x, z}
}

// AddWaypoint appends a waypoint and returns its index
func (p *Player) AddWaypoint(w Waypoint) int {
	p.Path = append(p.Path, w)
	return len(p.Path) - 1
}

// SetPath installs a deep copy of path and rewinds the cursor
func (p *Player) SetPath(path []Waypoint) {
	p.Path = ClonePath(path)
	p.Cursor = 0
	p.Moving = false
}

// ClearPath drops the path and stops the player
func (p *Player) ClearPath() {
	p.Path = nil
	p.Cursor = 0
	p.Moving = false
}

// StartMoving rewinds to the first waypoint and starts running
// No-op on an empty path
func (p *Player) StartMoving() {
	if len(p.Path) == 0 {
		return
	}
	p.Cursor = 0
	p.Moving = true
}

// Resume continues from the current cursor
// No-op when the path is exhausted
func (p *Player) Resume() {
	if p.Cursor >= len(p.Path) {
		return
	}
	p.Moving = true
}

// CurrentWaypoint returns the waypoint under the cursor
func (p *Player) CurrentWaypoint() (Waypoint, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Path) {
		return Waypoint{}, false
	}
	return p.Path[p.Cursor], true
}

// AtDecision reports whether the player is halted on a decision waypoint
func (p *Player) AtDecision() bool {
	if p.Moving {
		return false
	}
	w, ok := p.CurrentWaypoint()
	return ok && w.Decision
}

// PathDone reports whether every waypoint has been passed
func (p *Player) PathDone() bool {
	return p.Cursor >= len(p.Path)
}
