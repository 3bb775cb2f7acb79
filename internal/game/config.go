package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/abertram/Invisiboga/internal/entity"
	"github.com/abertram/Invisiboga/internal/input"
	"github.com/abertram/Invisiboga/internal/world"
)

// PlayerCount is the number of seats at the board.
const PlayerCount = 2

// ErrInvalidConfig is returned when a Config cannot run a game.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation (dice, first player, special spaces).
	// A seed of 0 means a random seed will be generated.
	Seed int64

	FieldCapacity int     // Maximum number of spaces
	SpaceRadius   float64 // Space radius on the tracked plane

	MaxPips               int           // Die faces
	TranslationsPerSecond float64       // Pawn hops per second
	PawnDelay             time.Duration // Pause before a pawn starts moving
	PlayerDelay           time.Duration // Pause on a move that goes nowhere

	MaxTapTime            time.Duration // Longest touch that still counts as a tap
	MaxTapSquaredDistance float64       // Largest squared screen displacement of a tap

	SpacesToShowNext    int // Field length at which the next control appears
	SpacesToShowRestart int // Field length at which the restart control appears
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	rules := entity.DefaultRules()
	th := input.DefaultThresholds()
	return Config{
		FieldCapacity:         world.DefaultCapacity,
		SpaceRadius:           world.DefaultSpaceRadius,
		MaxPips:               rules.MaxPips,
		TranslationsPerSecond: rules.TranslationsPerSecond,
		PawnDelay:             rules.PawnDelay,
		PlayerDelay:           rules.PlayerDelay,
		MaxTapTime:            th.MaxTapTime,
		MaxTapSquaredDistance: th.MaxTapSquaredDistance,
		SpacesToShowNext:      5,
		SpacesToShowRestart:   1,
	}
}

// Validate checks that the settings describe a playable game.
func (c Config) Validate() error {
	switch {
	case c.MaxPips < 1:
		return fmt.Errorf("max pips %d: %w", c.MaxPips, ErrInvalidConfig)
	case c.TranslationsPerSecond <= 0:
		return fmt.Errorf("translations per second %v: %w", c.TranslationsPerSecond, ErrInvalidConfig)
	case c.SpacesToShowNext < 2:
		// A game needs at least a start and a target space.
		return fmt.Errorf("spaces to show next %d: %w", c.SpacesToShowNext, ErrInvalidConfig)
	case c.FieldCapacity > 0 && c.FieldCapacity < c.SpacesToShowNext:
		return fmt.Errorf("field capacity %d below %d: %w", c.FieldCapacity, c.SpacesToShowNext, ErrInvalidConfig)
	}
	return nil
}

// Rules returns the turn constants.
func (c Config) Rules() entity.Rules {
	return entity.Rules{
		MaxPips:               c.MaxPips,
		TranslationsPerSecond: c.TranslationsPerSecond,
		PawnDelay:             c.PawnDelay,
		PlayerDelay:           c.PlayerDelay,
	}
}

// Thresholds returns the tap classification thresholds.
func (c Config) Thresholds() input.Thresholds {
	return input.Thresholds{
		MaxTapTime:            c.MaxTapTime,
		MaxTapSquaredDistance: c.MaxTapSquaredDistance,
	}
}
