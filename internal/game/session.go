package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/abertram/Invisiboga/internal/entity"
	"github.com/abertram/Invisiboga/internal/gamedata"
	"github.com/abertram/Invisiboga/internal/input"
	"github.com/abertram/Invisiboga/internal/telemetry"
	"github.com/abertram/Invisiboga/internal/world"
)

// ErrSeatCount is returned when the roster does not fill every seat exactly once.
var ErrSeatCount = errors.New("wrong number of seats")

// Session holds the entire game state: the field, the players and the mode.
// It is driven from a single goroutine, once per rendered frame.
type Session struct {
	cfg        Config
	rules      entity.Rules
	thresholds input.Thresholds

	field   *world.Field
	players []*entity.Player
	active  int

	mode     Mode
	tracking bool
	id       string

	notifier Notifier
	rng      entity.Roller
	now      func() time.Time

	baseLogger zerolog.Logger
	logger     zerolog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	metrics    *metrics
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.baseLogger = logger }
}

// WithClock replaces the wall clock used for delays.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRand replaces the seeded random source.
func WithRand(rng entity.Roller) Option {
	return func(s *Session) { s.rng = rng }
}

// WithTracer replaces the session tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) { s.tracer = tracer }
}

// WithMeter replaces the meter the session counters are created on.
func WithMeter(meter metric.Meter) Option {
	return func(s *Session) { s.meter = meter }
}

// NewSession creates a session for the given seats. It starts in ModeNotInited;
// call Init before the first frame.
func NewSession(cfg Config, seats []gamedata.SeatDef, notifier Notifier, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(seats) != PlayerCount {
		return nil, fmt.Errorf("%d seats, want %d: %w", len(seats), PlayerCount, ErrSeatCount)
	}

	players := make([]*entity.Player, 0, len(seats))
	for i := range seats {
		p, err := seats[i].NewPlayer()
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i+1, err)
		}
		players = append(players, p)
	}

	if notifier == nil {
		notifier = NopNotifier{}
	}

	s := &Session{
		cfg:        cfg,
		rules:      cfg.Rules(),
		thresholds: cfg.Thresholds(),
		field:      world.NewField(cfg.FieldCapacity, cfg.SpaceRadius),
		players:    players,
		mode:       ModeNotInited,
		notifier:   notifier,
		now:        time.Now,
		baseLogger: zerolog.Nop(),
		tracer:     telemetry.Tracer("game"),
		meter:      telemetry.Meter("game"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = sessionMetrics(s.meter)

	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	s.logger = s.baseLogger
	return s, nil
}

// Init starts a new game and shows the first hint.
func (s *Session) Init(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "game.init")
	defer span.End()

	s.newGameID()
	for _, p := range s.players {
		p.Reset()
	}
	s.active = 0
	span.SetAttributes(
		attribute.String("game.id", s.id),
		attribute.Int("game.players", len(s.players)),
	)
	s.logger.Info().Msg("game initialised")

	s.setMode(ctx, ModeShowHintMarkerNeeded)
}

// Restart throws away the board and every turn in flight and returns to board building.
func (s *Session) Restart(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "game.restart")
	defer span.End()

	span.SetAttributes(
		attribute.String("game.previous_id", s.id),
		attribute.String("game.previous_mode", s.mode.String()),
		attribute.Int("field.spaces", s.field.Len()),
	)

	s.field.Reset()
	for _, p := range s.players {
		p.Reset()
	}
	s.active = 0
	s.newGameID()
	s.mode = ModeCreatingField

	for _, name := range []string{ControlRoll, ControlNext, ControlRestart, ControlCurrentPlayer} {
		s.notifier.SetControlVisible(name, false)
	}
	s.logger.Info().Msg("game restarted")
}

// Frame advances the session by one rendered frame. tracking reports whether the
// marker is visible; without it nothing happens. dt is the time since the previous
// frame in seconds.
func (s *Session) Frame(ctx context.Context, tracking bool, dt float64) {
	if tracking != s.tracking {
		s.logger.Debug().Bool("tracking", tracking).Msg("tracking changed")
	}
	s.tracking = tracking
	if !tracking {
		return
	}

	if s.mode == ModeWaitingForMarker {
		s.setMode(ctx, ModeShowHintCreateSpaces)
	}
	s.resolveTurn(ctx, dt)
}

// setMode switches the game mode. Some modes fire their side effects and move on
// immediately. Switching to the current mode does nothing.
func (s *Session) setMode(ctx context.Context, mode Mode) {
	if mode == s.mode {
		return
	}

	_, span := s.tracer.Start(ctx, "game.mode")
	span.SetAttributes(
		attribute.String("mode.from", s.mode.String()),
		attribute.String("mode.to", mode.String()),
	)
	span.End()
	s.logger.Info().Stringer("from", s.mode).Stringer("to", mode).Msg("mode changed")

	s.mode = mode

	switch mode {
	case ModeShowHintMarkerNeeded:
		s.notifier.Notify(msgMarkerNeeded, PriorityLong)
		s.mode = ModeWaitingForMarker

	case ModeShowHintCreateSpaces:
		for _, hint := range createFieldHints {
			s.notifier.Notify(hint, PriorityLong)
		}
		s.mode = ModeCreatingField

	case ModeDrawingBeginningPlayer:
		s.drawBeginningPlayer()
		s.setMode(ctx, ModeRunning)

	case ModeNotInited, ModeWaitingForMarker, ModeCreatingField, ModeRunning, ModeGameOver:

	default:
		s.logger.Error().Int("mode", int(mode)).Msg("unknown game mode")
	}
}

// drawBeginningPlayer puts every pawn on the start space and picks who begins.
func (s *Session) drawBeginningPlayer() {
	// Spaces only have positions now that the board is built.
	for _, p := range s.players {
		p.PlacePawn(s.field)
	}
	s.notifier.SetControlVisible(ControlCurrentPlayer, true)
	s.setActive(s.rng.Intn(len(s.players)))
	if s.ActivePlayer().IsHuman() {
		s.notifier.SetControlVisible(ControlRoll, true)
	}
}

func (s *Session) setActive(i int) {
	s.active = i
	p := s.players[i]
	s.notifier.ActivePlayerChanged(p.Name, p.Kind.Label(), p.Color)
	s.logger.Info().Str("player", p.Name).Stringer("kind", p.Kind).Msg("active player changed")
}

func (s *Session) newGameID() {
	s.id = uuid.NewString()
	s.logger = s.baseLogger.With().Str("game_id", s.id).Logger()
}

// ID returns the identifier of the current game.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current game mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Tracking reports whether the last frame saw the marker.
func (s *Session) Tracking() bool {
	return s.tracking
}

// Field returns the board.
func (s *Session) Field() *world.Field {
	return s.field
}

// Players returns the players in seat order.
func (s *Session) Players() []*entity.Player {
	return s.players
}

// ActiveIndex returns the seat index of the player whose turn it is.
func (s *Session) ActiveIndex() int {
	return s.active
}

// ActivePlayer returns the player whose turn it is.
func (s *Session) ActivePlayer() *entity.Player {
	return s.players[s.active]
}

// Config returns the session settings.
func (s *Session) Config() Config {
	return s.cfg
}
