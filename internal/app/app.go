// Package app runs the terminal front end: it turns keys and mouse events into
// session requests and gestures and advances the session once per frame.
package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/abertram/Invisiboga/internal/game"
	"github.com/abertram/Invisiboga/internal/input"
	"github.com/abertram/Invisiboga/internal/telemetry"
	"github.com/abertram/Invisiboga/internal/ui"
	"github.com/abertram/Invisiboga/internal/world"
)

// Terminal is the screen the app draws on and reads events from.
type Terminal interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// App owns the frame loop.
type App struct {
	term     Terminal
	session  *game.Session
	overlay  *ui.Overlay
	renderer *ui.Renderer
	tracker  *input.Tracker

	frameRate int
	marker    bool // Simulated marker visibility
	running   bool
	last      time.Time

	now    func() time.Time
	logger zerolog.Logger
	tracer trace.Tracer
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the app logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithClock replaces the wall clock used for touch timing.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithTracer replaces the app tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *App) { a.tracer = tracer }
}

// New wires a session to a terminal. The overlay must be the session's notifier.
func New(term Terminal, session *game.Session, overlay *ui.Overlay, viewport ui.Viewport, frameRate int, opts ...Option) *App {
	a := &App{
		term:      term,
		session:   session,
		overlay:   overlay,
		renderer:  ui.NewRenderer(term, viewport),
		tracker:   input.NewTracker(session.Config().Thresholds(), viewport.Project),
		frameRate: frameRate,
		running:   true,
		now:       time.Now,
		logger:    zerolog.Nop(),
		tracer:    telemetry.Tracer("app"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run initialises the session and runs frames until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "app.run")
	defer span.End()
	span.SetAttributes(attribute.Int("app.frame_rate", a.frameRate))

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	go a.pollEvents(events, done)
	defer close(done)

	a.session.Init(ctx)
	a.last = a.now()
	a.renderer.Render(a.session, a.overlay)

	ticker := time.NewTicker(time.Second / time.Duration(a.frameRate))
	defer ticker.Stop()

	for a.running {
		select {
		case <-ctx.Done():
			a.running = false
		case ev, ok := <-events:
			if !ok {
				a.running = false
				break
			}
			a.handleEvent(ctx, ev)
		case <-ticker.C:
			a.tick(ctx)
		}
	}

	a.term.Close()
	a.logger.Info().Str("game_id", a.session.ID()).Stringer("mode", a.session.Mode()).Msg("app stopped")
	return nil
}

// pollEvents forwards terminal events until the terminal is closed.
func (a *App) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := a.term.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// tick runs one frame: advance the session, feed a held touch as a drag, redraw.
func (a *App) tick(ctx context.Context) {
	now := a.now()
	dt := now.Sub(a.last).Seconds()
	a.last = now

	a.session.Frame(ctx, a.marker, dt)
	if g, ok := a.tracker.Active(now); ok {
		a.session.HandleGesture(ctx, g)
	}
	a.renderer.Render(a.session, a.overlay)
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		a.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		a.term.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
		case 'm', 'M':
			a.marker = !a.marker
			if !a.marker {
				a.tracker.Handle(input.ActionCancel, world.Vec2{}, a.now())
			}
			a.logger.Debug().Bool("marker", a.marker).Msg("marker toggled")
		case 'n', 'N':
			a.request("next", a.session.RequestAdvance(ctx))
		case 'r':
			a.request("roll", a.session.RequestRoll(ctx))
		case 'R':
			a.request("restart", a.session.RequestRestart(ctx))
		}
	}
}

func (a *App) request(name string, honoured bool) {
	a.logger.Debug().Str("request", name).Bool("honoured", honoured).Msg("control pressed")
}

// handleMouseEvent turns the primary button into touch events.
func (a *App) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	col, row := ev.Position()
	screen := a.renderer.Viewport().Screen(col, row)
	now := a.now()

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !a.tracker.Pressed():
		a.tracker.Handle(input.ActionDown, screen, now)
	case pressed:
		a.tracker.Handle(input.ActionMove, screen, now)
	case a.tracker.Pressed():
		if g, ok := a.tracker.Handle(input.ActionUp, screen, now); ok {
			a.session.HandleGesture(ctx, g)
		}
	}
}

// Marker reports whether the simulated marker is visible.
func (a *App) Marker() bool {
	return a.marker
}

// Running reports whether the loop keeps going.
func (a *App) Running() bool {
	return a.running
}
