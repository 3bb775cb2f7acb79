// Package logging builds the zerolog loggers used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a timestamped logger writing JSON lines to w. Unknown levels
// fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Open creates a logger that appends to path. The terminal belongs to the
// game, so logs never go to stdout. An empty path disables logging. The
// returned close function is never nil.
func Open(level, path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f.Close, nil
}
