package play

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/parameter"
)

// ErrInvalidPlay wraps every validation failure
var ErrInvalidPlay = errors.New("invalid play")

// PlayerPath is the scripted route of one player
type PlayerPath struct {
	ID   component.PlayerID   `toml:"id"`
	Path []component.Waypoint `toml:"path"`
}

// TransferDef is a scripted pass between two players, by ID
// The pass fires once From has stopped past path index After
type TransferDef struct {
	From  component.PlayerID `toml:"from"`
	To    component.PlayerID `toml:"to"`
	After int                `toml:"after"`
}

// Play is a complete drill: who runs where, who starts with the ball, and who passes to whom
type Play struct {
	Name      string             `toml:"name"`
	Carrier   component.PlayerID `toml:"carrier"`
	Players   []PlayerPath       `toml:"players"`
	Transfers []TransferDef      `toml:"transfers"`
}

// DefaultCarrier is the player holding the ball at kickoff
func DefaultCarrier() component.PlayerID {
	return component.NewPlayerID(component.TeamHome, parameter.DummyHalfNumber)
}

// CarrierID returns the initial carrier, falling back to the home dummy half
func (p *Play) CarrierID() component.PlayerID {
	if p.Carrier == "" {
		return DefaultCarrier()
	}
	return p.Carrier
}

// PathOf returns the path of id, nil when the player has none
// The returned slice aliases the play
func (p *Play) PathOf(id component.PlayerID) []component.Waypoint {
	for _, pp := range p.Players {
		if pp.ID == id {
			return pp.Path
		}
	}
	return nil
}

// SetPath replaces the path of id, adding the player entry if needed
// An empty path removes the entry
func (p *Play) SetPath(id component.PlayerID, path []component.Waypoint) {
	for i := range p.Players {
		if p.Players[i].ID != id {
			continue
		}
		if len(path) == 0 {
			p.Players = append(p.Players[:i], p.Players[i+1:]...)
			return
		}
		p.Players[i].Path = component.ClonePath(path)
		return
	}
	if len(path) > 0 {
		p.Players = append(p.Players, PlayerPath{ID: id, Path: component.ClonePath(path)})
	}
}

// Clone returns a deep copy sharing no slices with p
func (p *Play) Clone() *Play {
	c := &Play{Name: p.Name, Carrier: p.Carrier}
	if p.Players != nil {
		c.Players = make([]PlayerPath, len(p.Players))
		for i, pp := range p.Players {
			c.Players[i] = PlayerPath{ID: pp.ID, Path: component.ClonePath(pp.Path)}
		}
	}
	if p.Transfers != nil {
		c.Transfers = make([]TransferDef, len(p.Transfers))
		copy(c.Transfers, p.Transfers)
	}
	return c
}

// Validate checks the play can be run as-is
// All problems are reported, each wrapping ErrInvalidPlay
func (p *Play) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidPlay}, args...)...))
	}

	if p.Name == "" {
		fail("missing name")
	}
	if _, _, err := p.CarrierID().Parse(); err != nil {
		fail("carrier: %v", err)
	}

	seen := make(map[component.PlayerID]bool, len(p.Players))
	for _, pp := range p.Players {
		team, _, err := pp.ID.Parse()
		if err != nil {
			fail("%v", err)
			continue
		}
		if team != component.TeamHome {
			fail("%s: only home players run paths", pp.ID)
		}
		if seen[pp.ID] {
			fail("%s: duplicate path", pp.ID)
		}
		seen[pp.ID] = true

		for i, w := range pp.Path {
			if !finite(w.X) || !finite(w.Z) {
				fail("%s waypoint %d: non-finite coordinate", pp.ID, i)
			}
			if !w.Decision {
				if len(w.Options) > 0 {
					fail("%s waypoint %d: options on a non-decision waypoint", pp.ID, i)
				}
				continue
			}
			if len(w.Options) == 0 {
				fail("%s waypoint %d: decision without options", pp.ID, i)
				continue
			}
			correct := 0
			for _, o := range w.Options {
				if o.Correct {
					correct++
				}
			}
			if correct != 1 {
				fail("%s waypoint %d: %d correct options, want exactly 1", pp.ID, i, correct)
			}
		}
	}

	for i, t := range p.Transfers {
		if _, _, err := t.From.Parse(); err != nil {
			fail("transfer %d from: %v", i, err)
			continue
		}
		if _, _, err := t.To.Parse(); err != nil {
			fail("transfer %d to: %v", i, err)
			continue
		}
		if t.From == t.To {
			fail("transfer %d: %s passes to itself", i, t.From)
		}
		if n := len(p.PathOf(t.From)); t.After < 0 || t.After >= n {
			fail("transfer %d: index %d out of range for %s path of %d", i, t.After, t.From, n)
		}
	}

	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
