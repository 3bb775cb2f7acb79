// Package main is the entry point for Invisiboga.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/abertram/Invisiboga/internal/app"
	"github.com/abertram/Invisiboga/internal/config"
	"github.com/abertram/Invisiboga/internal/game"
	"github.com/abertram/Invisiboga/internal/gamedata"
	"github.com/abertram/Invisiboga/internal/logging"
	"github.com/abertram/Invisiboga/internal/telemetry"
	"github.com/abertram/Invisiboga/internal/ui"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	settings, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	logger, closeLog, err := logging.Open(settings.LogLevel, settings.LogFile)
	if err != nil {
		log.Printf("Warning: %v, running without a log file", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracer := telemetry.NoopTracer()
	if settings.TelemetryEnabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("telemetry setup failed, running without observability")
		} else {
			tracer = telemetry.Tracer("game")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	overlay := ui.NewOverlay(nil)
	session, err := game.NewSession(settings.Game, gamedata.MustLoadSeats(), overlay,
		game.WithLogger(logger),
		game.WithTracer(tracer),
	)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	viewport := ui.Viewport{
		CellWidth:  settings.CellWidth,
		CellHeight: settings.CellHeight,
		Top:        ui.BoardTop,
	}
	a := app.New(screen, session, overlay, viewport, settings.FrameRate,
		app.WithLogger(logger),
		app.WithTracer(tracer),
	)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv fills the standard OTEL exporter variables from their
// INVISIBOGA_OTLP_* counterparts unless they are already set.
// INVISIBOGA_OTLP_HEADERS uses the OTEL list format, e.g. "api-key=secret".
func setupOTelEnv() {
	for from, to := range map[string]string{
		"INVISIBOGA_OTLP_ENDPOINT": "OTEL_EXPORTER_OTLP_ENDPOINT",
		"INVISIBOGA_OTLP_HEADERS":  "OTEL_EXPORTER_OTLP_HEADERS",
	} {
		if v := os.Getenv(from); v != "" && os.Getenv(to) == "" {
			os.Setenv(to, v)
		}
	}
}
