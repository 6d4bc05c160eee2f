package play

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/parameter"
)

var (
	// ErrNoSelection is returned by path edits before a player is selected
	ErrNoSelection = errors.New("designer: no player selected")
	// ErrNotEditable is returned when selecting a player that cannot run a path
	ErrNotEditable = errors.New("designer: only home players can be given a path")
	// ErrBadWaypoint is returned for edits naming a missing waypoint or option
	ErrBadWaypoint = errors.New("designer: no such waypoint")
)

// Designer edits a draft play
// Live playback paths are never touched; Save hands out a validated copy
type Designer struct {
	draft    *Play
	selected component.PlayerID
}

// NewDesigner starts a draft from base, or from an empty play when base is nil
func NewDesigner(base *Play) *Designer {
	d := &Designer{}
	d.Load(base)
	return d
}

// Load replaces the draft with a copy of p and clears the selection
func (d *Designer) Load(p *Play) {
	if p == nil {
		d.draft = &Play{Carrier: DefaultCarrier()}
	} else {
		d.draft = p.Clone()
	}
	d.selected = ""
}

// Draft returns a copy of the current draft
func (d *Designer) Draft() *Play {
	return d.draft.Clone()
}

// Select makes id the target of path edits
func (d *Designer) Select(id component.PlayerID) error {
	team, _, err := id.Parse()
	if err != nil {
		return fmt.Errorf("designer select: %w", err)
	}
	if team != component.TeamHome {
		return fmt.Errorf("%w: %s", ErrNotEditable, id)
	}
	d.selected = id
	return nil
}

// Selected returns the selected player, if any
func (d *Designer) Selected() (component.PlayerID, bool) {
	return d.selected, d.selected != ""
}

// Path returns a copy of the draft path of id
func (d *Designer) Path(id component.PlayerID) []component.Waypoint {
	return component.ClonePath(d.draft.PathOf(id))
}

// AddWaypoint appends a waypoint to the selected player's path and returns its index
// A decision waypoint gets the default option set with nothing marked correct
func (d *Designer) AddWaypoint(x, z float64, decision bool) (int, error) {
	if d.selected == "" {
		return 0, ErrNoSelection
	}
	if !finite(x) || !finite(z) {
		return 0, fmt.Errorf("designer: non-finite waypoint (%v, %v)", x, z)
	}

	w := component.Waypoint{X: x, Z: z, Decision: decision}
	if decision {
		w.Options = make([]component.Option, 0, len(parameter.DesignerDefaultOptions))
		for _, o := range parameter.DesignerDefaultOptions {
			w.Options = append(w.Options, component.Option{Label: o.Label, Action: o.Action})
		}
	}

	path := append(d.draft.PathOf(d.selected), w)
	d.draft.SetPath(d.selected, path)
	return len(path) - 1, nil
}

// LastDecision returns the index of the selected player's last decision waypoint
func (d *Designer) LastDecision() (int, bool) {
	path := d.draft.PathOf(d.selected)
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Decision {
			return i, true
		}
	}
	return 0, false
}

// MarkCorrect makes option opt the single correct answer of decision waypoint wp
func (d *Designer) MarkCorrect(wp, opt int) error {
	if d.selected == "" {
		return ErrNoSelection
	}
	path := d.draft.PathOf(d.selected)
	if wp < 0 || wp >= len(path) || !path[wp].Decision {
		return fmt.Errorf("%w: %s has no decision at %d", ErrBadWaypoint, d.selected, wp)
	}
	opts := path[wp].Options
	if opt < 0 || opt >= len(opts) {
		return fmt.Errorf("%w: option %d of %d", ErrBadWaypoint, opt, len(opts))
	}
	for i := range opts {
		opts[i].Correct = i == opt
	}
	return nil
}

// ClearPath removes the selected player's path and any transfer that depended on it
func (d *Designer) ClearPath() error {
	if d.selected == "" {
		return ErrNoSelection
	}
	d.draft.SetPath(d.selected, nil)
	kept := d.draft.Transfers[:0]
	for _, t := range d.draft.Transfers {
		if t.From != d.selected {
			kept = append(kept, t)
		}
	}
	d.draft.Transfers = kept
	return nil
}

// SetCarrier sets who holds the ball at kickoff
func (d *Designer) SetCarrier(id component.PlayerID) error {
	if _, _, err := id.Parse(); err != nil {
		return fmt.Errorf("designer carrier: %w", err)
	}
	d.draft.Carrier = id
	return nil
}

// AddTransfer appends a scripted pass
func (d *Designer) AddTransfer(from, to component.PlayerID, after int) error {
	for _, id := range []component.PlayerID{from, to} {
		if _, _, err := id.Parse(); err != nil {
			return fmt.Errorf("designer transfer: %w", err)
		}
	}
	if n := len(d.draft.PathOf(from)); after < 0 || after >= n {
		return fmt.Errorf("%w: transfer after %d, %s has %d waypoints", ErrBadWaypoint, after, from, n)
	}
	d.draft.Transfers = append(d.draft.Transfers, TransferDef{From: from, To: to, After: after})
	return nil
}

// Save returns a validated copy of the draft under name
func (d *Designer) Save(name string) (*Play, error) {
	p := d.draft.Clone()
	p.Name = name
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d.draft.Name = name
	return p, nil
}

// PlayerAt returns the player nearest to (x, z) within radius, nil when none is in reach
func PlayerAt(players []*component.Player, x, z, radius float64) *component.Player {
	var best *component.Player
	bestDist := math.Inf(1)
	for _, p := range players {
		d := math.Hypot(p.Position[0]-x, p.Position[1]-z)
		if d <= radius && d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
