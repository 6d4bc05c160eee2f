package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/touchplay/parameter"
)

// Team identifies a side
type Team string

const (
	TeamHome Team = "home"
	TeamAway Team = "away"
)

// PlayerID is the stable "<team>-<number>" identity used by plays and transfers
type PlayerID string

// NewPlayerID builds an ID from team and shirt number
func NewPlayerID(team Team, number int) PlayerID {
	return PlayerID(fmt.Sprintf("%s-%d", team, number))
}

// Parse splits an ID into team and number
func (id PlayerID) Parse() (Team, int, error) {
	team, num, ok := strings.Cut(string(id), "-")
	if !ok {
		return "", 0, fmt.Errorf("player id %q: missing '-'", id)
	}
	t := Team(team)
	if t != TeamHome && t != TeamAway {
		return "", 0, fmt.Errorf("player id %q: unknown team %q", id, team)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return "", 0, fmt.Errorf("player id %q: %w", id, err)
	}
	if n < 1 || n > parameter.TeamSize {
		return "", 0, fmt.Errorf("player id %q: number out of range 1..%d", id, parameter.TeamSize)
	}
	return t, n, nil
}

// Squad is one side's players in shirt-number order
type Squad struct {
	Team    Team
	Players []*Player
}

// NewSquad creates TeamSize players at the origin
func NewSquad(team Team) *Squad {
	s := &Squad{Team: team, Players: make([]*Player, parameter.TeamSize)}
	for i := range s.Players {
		s.Players[i] = NewPlayer(team, i+1)
	}
	return s
}

// KickoffPosition returns the formation slot position for a shirt number
// Away positions mirror z about halfway
func KickoffPosition(team Team, number int) (x, z float64) {
	slot := parameter.Formation[number-1]
	if team == TeamAway {
		return slot.X, -(parameter.HomeKickoffZ + slot.DZ)
	}
	return slot.X, parameter.HomeKickoffZ + slot.DZ
}

// PositionForKickoff places every player on its formation slot and faces it forward
func (s *Squad) PositionForKickoff() {
	for _, p := range s.Players {
		x, z := KickoffPosition(s.Team, p.Number)
		p.SetPosition(x, z)
		p.Facing = 0
	}
}

// Player returns the player with the given shirt number, nil if out of range
func (s *Squad) Player(number int) *Player {
	if number < 1 || number > len(s.Players) {
		return nil
	}
	return s.Players[number-1]
}

// SlotName returns the formation slot name for a shirt number
func SlotName(number int) string {
	if number < 1 || number > parameter.TeamSize {
		return ""
	}
	return parameter.Formation[number-1].Name
}
