package component

import "github.com/go-gl/mathgl/mgl64"

// Option is one labelled choice at a decision waypoint
type Option struct {
	Label   string `toml:"label"`
	Action  string `toml:"action"`
	Correct bool   `toml:"correct"`
}

// Waypoint is a ground target a player runs toward
// Decision waypoints halt the player and offer Options
type Waypoint struct {
	X        float64  `toml:"x"`
	Z        float64  `toml:"z"`
	Decision bool     `toml:"decision"`
	Options  []Option `toml:"options,omitempty"`
}

// Target returns the waypoint ground position
func (w Waypoint) Target() mgl64.Vec2 {
	return mgl64.Vec2{w.X, w.Z}
}

// Clone returns a deep copy so option slices are never shared
func (w Waypoint) Clone() Waypoint {
	c := w
	if w.Options != nil {
		c.Options = make([]Option, len(w.Options))
		copy(c.Options, w.Options)
	}
	return c
}

// ClonePath deep-copies a path
func ClonePath(path []Waypoint) []Waypoint {
	if path == nil {
		return nil
	}
	out := make([]Waypoint, len(path))
	for i, w := range path {
		out[i] = w.Clone()
	}
	return out
}
