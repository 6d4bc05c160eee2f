package play

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/touchplay/component"
)

func TestExample_IsValid(t *testing.T) {
	p := Example()
	require.NoError(t, p.Validate())
	assert.Equal(t, component.PlayerID("home-6"), p.CarrierID())

	middle := p.PathOf("home-3")
	require.Len(t, middle, 5)
	assert.True(t, middle[2].Decision)
	assert.Equal(t, "cut_right", middle[2].Options[1].Action)
	assert.True(t, middle[2].Options[1].Correct)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Play)
		want   string
	}{
		{"missing name", func(p *Play) { p.Name = "" }, "missing name"},
		{"bad carrier", func(p *Play) { p.Carrier = "home-9" }, "carrier"},
		{"unknown player", func(p *Play) { p.Players[0].ID = "visitors-1" }, "unknown team"},
		{"away path", func(p *Play) { p.Players[0].ID = "away-6"; p.Transfers = nil }, "only home players"},
		{"duplicate path", func(p *Play) { p.Players[1].ID = p.Players[0].ID }, "duplicate"},
		{"nan coordinate", func(p *Play) { p.Players[1].Path[0].X = math.NaN() }, "non-finite"},
		{"two correct", func(p *Play) { p.Players[1].Path[2].Options[0].Correct = true }, "2 correct"},
		{"none correct", func(p *Play) { p.Players[1].Path[2].Options[1].Correct = false }, "0 correct"},
		{"decision without options", func(p *Play) { p.Players[1].Path[2].Options = nil }, "without options"},
		{"stray options", func(p *Play) {
			p.Players[1].Path[0].Options = []component.Option{{Label: "x", Action: "x"}}
		}, "non-decision"},
		{"self pass", func(p *Play) { p.Transfers[0].To = p.Transfers[0].From }, "itself"},
		{"transfer index", func(p *Play) { p.Transfers[0].After = 1 }, "out of range"},
		{"transfer unknown", func(p *Play) { p.Transfers[0].To = "home-0" }, "transfer 0 to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Example()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPlay)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestClone_SharesNothing(t *testing.T) {
	p := Example()
	c := p.Clone()
	c.Players[1].Path[2].Options[1].Correct = false
	c.Players[1].Path[0].X = 99
	c.Transfers[0].After = 3

	assert.True(t, p.Players[1].Path[2].Options[1].Correct)
	assert.Equal(t, 0.0, p.Players[1].Path[0].X)
	assert.Equal(t, 0, p.Transfers[0].After)
	assert.Equal(t, Example(), p)
}

func TestSetPath(t *testing.T) {
	p := &Play{}
	p.SetPath("home-1", []component.Waypoint{{X: 1}})
	require.Len(t, p.Players, 1)

	p.SetPath("home-1", []component.Waypoint{{X: 2}, {X: 3}})
	assert.Len(t, p.PathOf("home-1"), 2)

	p.SetPath("home-1", nil)
	assert.Empty(t, p.Players)
	assert.Nil(t, p.PathOf("home-1"))
}

func TestLabelFromAction(t *testing.T) {
	assert.Equal(t, "Cut Right", LabelFromAction("cut_right"))
	assert.Equal(t, "Pass Wide Left", LabelFromAction("pass-wide_left"))
	assert.Equal(t, "", LabelFromAction(""))
}

func TestNormalize_FillsOnlyEmptyLabels(t *testing.T) {
	p := Example()
	opts := p.Players[1].Path[2].Options
	opts[0].Label = ""
	p.Normalize()
	assert.Equal(t, "Cut Left", opts[0].Label)
	assert.Equal(t, "Cut right", opts[1].Label)
}
