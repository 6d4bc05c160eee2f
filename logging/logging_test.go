package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Disabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, closer, err := Setup(dir, "debug", false)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	log.Info().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "disabled logging creates nothing")
}

func TestSetup_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, closer, err := Setup(dir, "debug", true)
	require.NoError(t, err)

	log.Debug().Str("play", "switch").Msg("test log message")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"test log message"`)
	assert.Contains(t, string(data), `"play":"switch"`)
}

func TestSetup_LevelFilters(t *testing.T) {
	dir := t.TempDir()
	log, closer, err := Setup(dir, "WARN", true)
	require.NoError(t, err)
	log.Info().Msg("quiet")
	log.Warn().Msg("loud")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, make([]byte, MaxSize+1), 0644))

	_, closer, err := Setup(dir, "info", true)
	require.NoError(t, err)
	defer closer.Close()

	rotated, err := os.Stat(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, int64(MaxSize+1), rotated.Size())

	fresh, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, fresh.Size(), int64(MaxSize))
}

func TestSetup_SmallFileAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

	log, closer, err := Setup(dir, "info", true)
	require.NoError(t, err)
	log.Info().Msg("next")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("previous\n")))
	_, err = os.Stat(path + ".1")
	assert.True(t, os.IsNotExist(err))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)

	_, _, err = Setup(t.TempDir(), "chatty", true)
	assert.Error(t, err)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	log := Console(&buf, zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}
