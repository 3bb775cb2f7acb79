// Package config loads runtime settings from defaults, an optional JSON file
// and INVISIBOGA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/abertram/Invisiboga/internal/game"
)

// FileName is the config file looked up in the config directory.
const FileName = "invisiboga.json"

// EnvPrefix prefixes every environment override, e.g. INVISIBOGA_RULES_MAXPIPS.
const EnvPrefix = "INVISIBOGA"

// ErrInvalid is returned when the loaded settings cannot run the game.
var ErrInvalid = errors.New("invalid settings")

// Settings holds everything the binary needs to start.
type Settings struct {
	Game game.Config

	LogLevel         string
	LogFile          string // Empty disables logging
	TelemetryEnabled bool

	FrameRate  int     // Frames per second of the terminal loop
	CellWidth  float64 // World units per terminal column
	CellHeight float64 // World units per terminal row
}

func setDefaults(v *viper.Viper) {
	d := game.DefaultConfig()

	v.SetDefault("seed", 0)
	v.SetDefault("field.capacity", d.FieldCapacity)
	v.SetDefault("field.spaceRadius", d.SpaceRadius)

	v.SetDefault("rules.maxPips", d.MaxPips)
	v.SetDefault("rules.translationsPerSecond", d.TranslationsPerSecond)
	v.SetDefault("rules.pawnDelay", d.PawnDelay.String())
	v.SetDefault("rules.playerDelay", d.PlayerDelay.String())

	v.SetDefault("input.maxTapTime", d.MaxTapTime.String())
	v.SetDefault("input.maxTapSquaredDistance", d.MaxTapSquaredDistance)

	v.SetDefault("controls.showNextAt", d.SpacesToShowNext)
	v.SetDefault("controls.showRestartAt", d.SpacesToShowRestart)

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "invisiboga.log")
	v.SetDefault("telemetry.enabled", false)

	v.SetDefault("ui.frameRate", 30)
	v.SetDefault("ui.cellWidth", 5.0)
	v.SetDefault("ui.cellHeight", 10.0)
}

// Load reads the settings. configDir may be empty; a missing config file is
// not an error.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
		v.SetConfigType("json")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	s := Settings{
		Game: game.Config{
			Seed:                  v.GetInt64("seed"),
			FieldCapacity:         v.GetInt("field.capacity"),
			SpaceRadius:           v.GetFloat64("field.spaceRadius"),
			MaxPips:               v.GetInt("rules.maxPips"),
			TranslationsPerSecond: v.GetFloat64("rules.translationsPerSecond"),
			PawnDelay:             v.GetDuration("rules.pawnDelay"),
			PlayerDelay:           v.GetDuration("rules.playerDelay"),
			MaxTapTime:            v.GetDuration("input.maxTapTime"),
			MaxTapSquaredDistance: v.GetFloat64("input.maxTapSquaredDistance"),
			SpacesToShowNext:      v.GetInt("controls.showNextAt"),
			SpacesToShowRestart:   v.GetInt("controls.showRestartAt"),
		},
		LogLevel:         v.GetString("logLevel"),
		LogFile:          v.GetString("logFile"),
		TelemetryEnabled: v.GetBool("telemetry.enabled"),
		FrameRate:        v.GetInt("ui.frameRate"),
		CellWidth:        v.GetFloat64("ui.cellWidth"),
		CellHeight:       v.GetFloat64("ui.cellHeight"),
	}

	if err := s.Game.Validate(); err != nil {
		return Settings{}, err
	}
	if s.FrameRate <= 0 || s.CellWidth <= 0 || s.CellHeight <= 0 {
		return Settings{}, fmt.Errorf("frame rate %d, cell %vx%v: %w", s.FrameRate, s.CellWidth, s.CellHeight, ErrInvalid)
	}
	return s, nil
}
