package play

import "github.com/lixenwraith/touchplay/component"

// ExampleName is the name of the built-in play
const ExampleName = "dummy half to middle"

// Example returns the built-in drill: the dummy half steps forward and passes to the
// middle, who runs onto the ball and must read the defence at the 20 m mark
func Example() *Play {
	dummy := component.NewPlayerID(component.TeamHome, 6)
	middle := component.NewPlayerID(component.TeamHome, 3)

	return &Play{
		Name:    ExampleName,
		Carrier: dummy,
		Players: []PlayerPath{
			{ID: dummy, Path: []component.Waypoint{
				{X: 0, Z: 2},
			}},
			{ID: middle, Path: []component.Waypoint{
				{X: 0, Z: -2},
				{X: 0, Z: -10},
				{X: 0, Z: -20, Decision: true, Options: []component.Option{
					{Label: "Cut left", Action: "cut_left"},
					{Label: "Cut right", Action: "cut_right", Correct: true},
					{Label: "Pass wide", Action: "pass_wide"},
				}},
				{X: 10, Z: -30},
				{X: 15, Z: -40},
			}},
		},
		Transfers: []TransferDef{
			{From: dummy, To: middle, After: 0},
		},
	}
}
