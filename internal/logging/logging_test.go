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

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.level, &bytes.Buffer{}).GetLevel())
		})
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("player", "Player 1").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"player":"Player 1"`)
	assert.Contains(t, out, `"time":`)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closeFn, err := Open("debug", path)
	require.NoError(t, err)
	logger.Debug().Msg("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestOpenDisabled(t *testing.T) {
	logger, closeFn, err := Open("debug", "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closeFn())
}

func TestOpenBadPath(t *testing.T) {
	_, closeFn, err := Open("info", filepath.Join(t.TempDir(), "missing", "game.log"))
	require.Error(t, err)
	assert.NotNil(t, closeFn)
}
