package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abertram/Invisiboga/internal/game"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, game.DefaultConfig(), s.Game)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "invisiboga.log", s.LogFile)
	assert.False(t, s.TelemetryEnabled)
	assert.Equal(t, 30, s.FrameRate)
	assert.Equal(t, 5.0, s.CellWidth)
	assert.Equal(t, 10.0, s.CellHeight)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), s.Game)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"seed": 42,
		"logLevel": "debug",
		"rules": { "maxPips": 4, "pawnDelay": "250ms" },
		"controls": { "showNextAt": 3 },
		"ui": { "frameRate": 60 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.Game.Seed)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 4, s.Game.MaxPips)
	assert.Equal(t, 250*time.Millisecond, s.Game.PawnDelay)
	assert.Equal(t, 2*time.Second, s.Game.PlayerDelay)
	assert.Equal(t, 3, s.Game.SpacesToShowNext)
	assert.Equal(t, 60, s.FrameRate)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel": "debug"}`), 0644))

	t.Setenv("INVISIBOGA_LOGLEVEL", "warn")
	t.Setenv("INVISIBOGA_TELEMETRY_ENABLED", "true")
	t.Setenv("INVISIBOGA_INPUT_MAXTAPTIME", "300ms")

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", s.LogLevel)
	assert.True(t, s.TelemetryEnabled)
	assert.Equal(t, 300*time.Millisecond, s.Game.MaxTapTime)
}

func TestLoad_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("INVISIBOGA_RULES_MAXPIPS", "0")
	_, err := Load("")
	require.ErrorIs(t, err, game.ErrInvalidConfig)

	t.Setenv("INVISIBOGA_RULES_MAXPIPS", "6")
	t.Setenv("INVISIBOGA_UI_FRAMERATE", "0")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalid)
}
