// Package entity provides the players and the pawns they move along the field.
package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/abertram/Invisiboga/internal/world"
)

var (
	// ErrUnknownState is returned when a state machine meets a state it does not know.
	ErrUnknownState = errors.New("unknown state")
	// ErrNoSpace is returned when a pawn refers to a space the field does not have.
	ErrNoSpace = errors.New("space not on field")
)

// PawnState is the movement phase of a pawn.
type PawnState int

const (
	// PawnResting - idle, nothing to animate
	PawnResting PawnState = iota
	// PawnDelaying - artificial pause before NextState
	PawnDelaying
	// PawnPreMoving - velocity is computed on the next step
	PawnPreMoving
	// PawnMoving - interpolating from the current space to the target space
	PawnMoving
	// PawnPostMoving - arrived, waiting for the owning player to decide what's next
	PawnPostMoving
)

// String returns a human-readable state name.
func (s PawnState) String() string {
	switch s {
	case PawnResting:
		return "resting"
	case PawnDelaying:
		return "delaying"
	case PawnPreMoving:
		return "pre_moving"
	case PawnMoving:
		return "moving"
	case PawnPostMoving:
		return "post_moving"
	default:
		return "unknown"
	}
}

// Pawn is the animated token of a player. It moves exactly one space per
// PreMoving -> Moving -> PostMoving cycle; its player re-arms it for longer moves.
type Pawn struct {
	State     PawnState
	NextState PawnState

	Position world.Vec2 // Rendered position on the tracked plane
	Velocity world.Vec2 // Units per second while moving

	CurrentSpace int // Index of the space the current hop starts from
	TargetSpace  int // Index of the space the current hop ends on

	ContinueAt time.Time // End of the current delay
}

// Reset returns the pawn to its initial resting state.
func (p *Pawn) Reset() {
	*p = Pawn{State: PawnResting}
}

// PlaceAt puts the pawn on space i and snaps its position there.
func (p *Pawn) PlaceAt(f *world.Field, i int) {
	p.CurrentSpace = i
	if s := f.Space(i); s != nil {
		p.Position = s.Position
	}
}

// Aim sets the space the next hop ends on.
func (p *Pawn) Aim(i int) {
	p.TargetSpace = i
}

// Delay pauses the pawn until the given time, then continues with next.
func (p *Pawn) Delay(until time.Time, next PawnState) {
	p.State = PawnDelaying
	p.NextState = next
	p.ContinueAt = until
}

// Step advances the pawn by one frame. dt is the time since the previous frame
// in seconds; speed is the number of hops per second.
func (p *Pawn) Step(f *world.Field, now time.Time, dt, speed float64) error {
	switch p.State {
	case PawnResting, PawnPostMoving:
		// Waiting for the player to re-arm the pawn.

	case PawnDelaying:
		if !now.Before(p.ContinueAt) {
			p.State = p.NextState
		}

	case PawnPreMoving:
		from, to, err := p.segment(f)
		if err != nil {
			return err
		}
		p.Velocity = to.Position.Sub(from.Position).Scale(speed)
		p.State = PawnMoving

	case PawnMoving:
		from, to, err := p.segment(f)
		if err != nil {
			return err
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))

		total := from.Position.Dist(to.Position)
		traveled := from.Position.Dist(p.Position)
		if traveled >= total {
			// Clamp to the target so the pawn never overshoots.
			p.Position = to.Position
			p.State = PawnPostMoving
		}

	default:
		return fmt.Errorf("pawn state %d: %w", p.State, ErrUnknownState)
	}
	return nil
}

// segment returns the spaces the current hop runs between.
func (p *Pawn) segment(f *world.Field) (from, to *world.Space, err error) {
	from = f.Space(p.CurrentSpace)
	to = f.Space(p.TargetSpace)
	if from == nil || to == nil {
		return nil, nil, fmt.Errorf("pawn hop %d -> %d: %w", p.CurrentSpace, p.TargetSpace, ErrNoSpace)
	}
	return from, to, nil
}
