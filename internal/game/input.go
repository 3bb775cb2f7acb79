package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/abertram/Invisiboga/internal/entity"
	"github.com/abertram/Invisiboga/internal/input"
	"github.com/abertram/Invisiboga/internal/world"
)

// HandleGesture applies a board-building gesture. Gestures only count while the
// marker is tracked and the board is being built.
func (s *Session) HandleGesture(ctx context.Context, g input.Gesture) {
	if !s.tracking || s.mode != ModeCreatingField {
		return
	}

	switch g.Kind {
	case input.Tap:
		if i, ok := s.field.SelectSpace(g.Position); ok {
			if s.field.ToggleSpecial(i) {
				s.logger.Debug().
					Int("space", i).
					Stringer("type", s.field.Space(i).Type).
					Msg("space toggled")
			}
			return
		}
		s.placeSpace(ctx, g.Position)

	case input.DragActive:
		// A slow drag lays spaces along its path once it no longer looks like a tap.
		if s.thresholds.IsDrag(g) {
			s.placeSpace(ctx, g.Position)
		}

	default:
		s.logger.Error().Int("gesture", int(g.Kind)).Msg("unknown gesture")
	}
}

func (s *Session) placeSpace(ctx context.Context, p world.Vec2) {
	if !s.field.CanPlace(p) {
		return
	}
	i, ok := s.field.CreateSpace(p)
	if !ok {
		return
	}
	s.metrics.spaces.Add(ctx, 1)
	s.logger.Debug().
		Int("space", i).
		Float64("x", p.X).
		Float64("y", p.Y).
		Msg("space created")

	n := s.field.Len()
	if n == s.cfg.SpacesToShowNext {
		s.notifier.SetControlVisible(ControlNext, true)
	}
	if n == s.cfg.SpacesToShowRestart {
		s.notifier.SetControlVisible(ControlRestart, true)
	}
}

// RequestAdvance finishes board building and draws the beginning player.
// It reports whether the request was honoured.
func (s *Session) RequestAdvance(ctx context.Context) bool {
	if s.mode != ModeCreatingField || s.field.Len() < s.cfg.SpacesToShowNext {
		return false
	}
	ctx, span := s.tracer.Start(ctx, "game.advance")
	defer span.End()
	span.SetAttributes(attribute.Int("field.spaces", s.field.Len()))

	s.notifier.SetControlVisible(ControlNext, false)
	s.setMode(ctx, ModeDrawingBeginningPlayer)
	return true
}

// RequestRoll lets a waiting human player roll the die on the next frame.
func (s *Session) RequestRoll(ctx context.Context) bool {
	if s.mode != ModeRunning {
		return false
	}
	p := s.ActivePlayer()
	if !p.IsHuman() || p.State != entity.TurnWaiting {
		return false
	}
	s.notifier.SetControlVisible(ControlRoll, false)
	p.State = entity.TurnPreMoving
	s.logger.Debug().Str("player", p.Name).Msg("roll requested")
	return true
}

// RequestRestart discards the board and all turns and goes back to board building.
func (s *Session) RequestRestart(ctx context.Context) bool {
	if s.mode < ModeCreatingField {
		return false
	}
	s.Restart(ctx)
	return true
}
