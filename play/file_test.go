package play

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const switchPlay = `
name = "switch"
carrier = "home-6"

[[players]]
id = "home-6"
path = [{ x = 0.0, z = 2.0 }]

[[players]]
id = "home-4"

  [[players.path]]
  x = 5.0
  z = -5.0

  [[players.path]]
  x = 0.0
  z = -15.0
  decision = true
  options = [
    { action = "switch_back", correct = true },
    { action = "run_straight" },
  ]

[[transfers]]
from = "home-6"
to = "home-4"
after = 0
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(switchPlay))
	require.NoError(t, err)

	assert.Equal(t, "switch", p.Name)
	path := p.PathOf("home-4")
	require.Len(t, path, 2)
	assert.True(t, path[1].Decision)
	assert.Equal(t, "Switch Back", path[1].Options[0].Label)
	assert.Equal(t, "Run Straight", path[1].Options[1].Label)
	assert.Equal(t, TransferDef{From: "home-6", To: "home-4", After: 0}, p.Transfers[0])
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`name = "x"` + "\nspeed = 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Decode(strings.NewReader(strings.Replace(switchPlay, "correct = true", "correct = false", 1)))
	assert.ErrorIs(t, err, ErrInvalidPlay)

	_, err = Decode(strings.NewReader("name = "))
	assert.Error(t, err)
}

func TestEncodeDecode_Example(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Example()))

	p, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Example().Players, p.Players)
	assert.Equal(t, Example().Transfers, p.Transfers)
}

func TestLoad(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ExampleName, p.Name)

	dir := t.TempDir()
	path := filepath.Join(dir, "switch.toml")
	require.NoError(t, os.WriteFile(path, []byte(switchPlay), 0644))

	p, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "switch", p.Name)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
