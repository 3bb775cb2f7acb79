package game

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/abertram/Invisiboga/internal/entity"
	"github.com/abertram/Invisiboga/internal/world"
)

// resolveTurn decides what follows a finished move segment of the active player
// and then steps that player's turn by dt seconds. It only runs while the game
// is in ModeRunning.
func (s *Session) resolveTurn(ctx context.Context, dt float64) {
	if s.mode != ModeRunning {
		return
	}

	p := s.ActivePlayer()
	if p.State == entity.TurnPostMoving {
		target := s.field.Space(p.TargetSpace)
		switch {
		case target != nil && target.Type == world.SpaceSpecial:
			s.applySpecial(ctx, p)
		case p.TargetSpace < s.field.LastIndex():
			s.passTurn(p)
		default:
			s.declareWinner(ctx, p)
			return
		}
	}

	p = s.ActivePlayer()
	events, err := p.Step(s.field, s.now(), dt, s.rng, s.rules)
	s.handleEvents(ctx, p, events)
	if err != nil {
		s.logger.Error().Err(err).Str("player", p.Name).Msg("skipping frame")
	}
}

// applySpecial moves the player a random number of spaces ahead or back.
func (s *Session) applySpecial(ctx context.Context, p *entity.Player) {
	_, span := s.tracer.Start(ctx, "turn.special")
	defer span.End()

	back := s.rng.Intn(2) == 1
	offset := s.rules.Roll(s.rng)
	if back {
		offset = -offset
	}
	from := p.TargetSpace
	p.SetTarget(s.field, p.TargetSpace+offset)

	span.SetAttributes(
		attribute.String("player.name", p.Name),
		attribute.Int("special.offset", offset),
		attribute.Int("space.from", from),
		attribute.Int("space.to", p.TargetSpace),
	)
	s.metrics.specials.Add(ctx, 1, metric.WithAttributes(attribute.Bool("forward", offset > 0)))
	s.logger.Info().
		Str("player", p.Name).
		Int("offset", offset).
		Int("from", from).
		Int("to", p.TargetSpace).
		Msg("special space")

	s.notifier.Notify(specialText(p.Name, offset), PriorityLong)
	s.handleEvents(ctx, p, p.PrepareMove(s.field, s.now(), s.rules))
}

// passTurn ends the player's leg and hands the turn to the next seat.
func (s *Session) passTurn(p *entity.Player) {
	p.State = p.IdleState()
	p.NextState = p.State

	s.setActive((s.active + 1) % len(s.players))
	if s.ActivePlayer().IsHuman() {
		s.notifier.SetControlVisible(ControlRoll, true)
	}
}

func (s *Session) declareWinner(ctx context.Context, p *entity.Player) {
	_, span := s.tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("game.id", s.id),
		attribute.String("winner.name", p.Name),
		attribute.String("winner.kind", p.Kind.String()),
	)
	span.End()

	s.metrics.wins.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", p.Kind.String())))
	s.notifier.Notify(winText(p.Name), PriorityLong)
	s.setMode(ctx, ModeGameOver)
}

// handleEvents reports what a turn step did.
func (s *Session) handleEvents(ctx context.Context, p *entity.Player, events []entity.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case entity.EventRolled:
			_, span := s.tracer.Start(ctx, "turn.roll")
			span.SetAttributes(
				attribute.String("player.name", p.Name),
				attribute.Int("roll.pips", ev.Pips),
				attribute.Int("space.target", ev.To),
			)
			span.End()
			s.metrics.rolls.Add(ctx, 1, metric.WithAttributes(attribute.Int("pips", ev.Pips)))
			s.notifier.Notify(rolledText(p.Name, ev.Pips), PriorityShort)
			s.logEvent(zerolog.InfoLevel, p, ev)

		case entity.EventTargetOccupied:
			s.notifier.Notify(occupiedText(p.Name), PriorityLong)
			s.logEvent(zerolog.InfoLevel, p, ev)

		case entity.EventHop, entity.EventArrived:
			s.logEvent(zerolog.DebugLevel, p, ev)

		default:
			s.logger.Error().Int("event", int(ev.Kind)).Msg("unknown turn event")
		}
	}
}

func (s *Session) logEvent(level zerolog.Level, p *entity.Player, ev entity.Event) {
	e := s.logger.WithLevel(level).
		Str("player", p.Name).
		Stringer("event", ev.Kind).
		Int("from", ev.From).
		Int("to", ev.To)
	if ev.Kind == entity.EventRolled {
		e = e.Int("pips", ev.Pips)
	}
	e.Msg("turn event")
}
