package physics

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/parameter"
)

// Arrival is the outcome of one Advance call
type Arrival int

const (
	// ArrivalNone: idle, or still travelling toward the current waypoint
	ArrivalNone Arrival = iota
	// ArrivalWaypoint: reached a plain waypoint, cursor moved on, still running
	ArrivalWaypoint
	// ArrivalDecision: halted on a decision waypoint, cursor unchanged
	// Terminal for the tick, caller resolves before the player moves again
	ArrivalDecision
	// ArrivalPathComplete: last waypoint reached, player stopped
	ArrivalPathComplete
)

func (a Arrival) String() string {
	switch a {
	case ArrivalWaypoint:
		return "waypoint"
	case ArrivalDecision:
		return "decision"
	case ArrivalPathComplete:
		return "complete"
	default:
		return "none"
	}
}

// Traversal moves players along their waypoint paths at constant speed
type Traversal struct {
	Speed     float64 // world units per second
	Threshold float64 // arrival snap distance
}

// DefaultTraversal returns the reference tuning: 5 u/s, 0.1 u snap
func DefaultTraversal() Traversal {
	return Traversal{
		Speed:     parameter.PlayerSpeed,
		Threshold: parameter.ArrivalThreshold,
	}
}

// Advance steps p toward p.Path[p.Cursor] by dt
// The step never overshoots; a remaining distance under Threshold after the step
// is handled as an arrival in the same tick
// Panics on non-finite coordinates
func (t Traversal) Advance(p *component.Player, dt time.Duration) Arrival {
	if !p.Moving || len(p.Path) == 0 {
		return ArrivalNone
	}
	if p.Cursor >= len(p.Path) {
		p.Moving = false
		return ArrivalPathComplete
	}

	target := p.Path[p.Cursor].Target()
	mustFinite(p.ID, p.Position, target)

	delta := target.Sub(p.Position)
	dist := delta.Len()

	// Covers the zero-length segment: never normalize a zero vector
	if dist < t.Threshold {
		return t.arrive(p, target)
	}

	step := t.Speed * dt.Seconds()
	if step > dist {
		step = dist
	}
	dir := delta.Mul(1 / dist)
	p.Position = p.Position.Add(dir.Mul(step))
	p.Facing = math.Atan2(delta[0], delta[1])

	if dist-step < t.Threshold {
		return t.arrive(p, target)
	}
	return ArrivalNone
}

// arrive snaps onto target and moves the cursor unless the waypoint is a decision
func (t Traversal) arrive(p *component.Player, target mgl64.Vec2) Arrival {
	p.Position = target

	if p.Path[p.Cursor].Decision {
		p.Moving = false
		return ArrivalDecision
	}

	p.Cursor++
	if p.Cursor >= len(p.Path) {
		p.Moving = false
		return ArrivalPathComplete
	}
	return ArrivalWaypoint
}

// Distance returns the remaining straight-line distance to the current waypoint
// Returns 0 when the path is exhausted
func Distance(p *component.Player) float64 {
	w, ok := p.CurrentWaypoint()
	if !ok {
		return 0
	}
	return w.Target().Sub(p.Position).Len()
}

func mustFinite(id component.PlayerID, vs ...mgl64.Vec2) {
	for _, v := range vs {
		for _, c := range v {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				panic(fmt.Sprintf("physics: non-finite coordinate on %s: %v", id, v))
			}
		}
	}
}
