package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/abertram/Invisiboga/internal/world"
)

// Kind tells whether a seat is played by a person or by the computer.
type Kind int

const (
	KindHuman Kind = iota
	KindComputer
)

// String returns the kind identifier used in data files.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Label returns the display label shown next to the active player's name.
func (k Kind) Label() string {
	switch k {
	case KindHuman:
		return "Human"
	case KindComputer:
		return "Computer"
	default:
		return "Unknown"
	}
}

// ParseKind parses a kind identifier.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return KindHuman, nil
	case "computer":
		return KindComputer, nil
	default:
		return 0, fmt.Errorf("invalid player kind %q", s)
	}
}

// TurnState is the phase of a player's turn.
type TurnState int

const (
	// TurnWaiting - idle until the roll is requested or the turn resolver hands over
	TurnWaiting TurnState = iota
	// TurnPreMoving - roll the die and compute the target on the next step
	TurnPreMoving
	// TurnMoving - the pawn is hopping towards the target
	TurnMoving
	// TurnPostMoving - the move segment is done, the turn resolver decides what follows
	TurnPostMoving
	// TurnDelaying - artificial pause before NextState
	TurnDelaying
)

// String returns a human-readable state name.
func (s TurnState) String() string {
	switch s {
	case TurnWaiting:
		return "waiting"
	case TurnPreMoving:
		return "pre_moving"
	case TurnMoving:
		return "moving"
	case TurnPostMoving:
		return "post_moving"
	case TurnDelaying:
		return "delaying"
	default:
		return "unknown"
	}
}

// Roller draws uniform integers in [0, n). *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// Rules holds the timing and dice constants of a turn.
type Rules struct {
	MaxPips               int           // Die faces, rolls are uniform in [1, MaxPips]
	TranslationsPerSecond float64       // Pawn hops per second
	PawnDelay             time.Duration // Pause before the pawn starts a move
	PlayerDelay           time.Duration // Pause on a move that goes nowhere
}

// DefaultRules returns the standard game constants.
func DefaultRules() Rules {
	return Rules{
		MaxPips:               6,
		TranslationsPerSecond: 1,
		PawnDelay:             time.Second,
		PlayerDelay:           2 * time.Second,
	}
}

// Roll draws a die value in [1, MaxPips].
func (r Rules) Roll(roller Roller) int {
	return roller.Intn(r.MaxPips) + 1
}

// Player is one seat at the board together with its pawn.
type Player struct {
	Name  string
	Kind  Kind
	Color string // Hex colour tag, e.g. "#FF0000"

	State     TurnState
	NextState TurnState

	CurrentSpace int // Space the player stands on
	TargetSpace  int // Space the current move ends on

	ContinueAt time.Time // End of the current delay

	Pawn Pawn
}

// NewPlayer creates a player in its initial state.
func NewPlayer(name string, kind Kind, color string) *Player {
	p := &Player{
		Name:  name,
		Kind:  kind,
		Color: color,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the start space in its idle state.
func (p *Player) Reset() {
	p.CurrentSpace = 0
	p.TargetSpace = 0
	p.State = p.IdleState()
	p.NextState = p.State
	p.ContinueAt = time.Time{}
	p.Pawn.Reset()
}

// IdleState is the state a player waits in between turns. Humans wait for the
// roll control; the computer rolls as soon as it becomes active.
func (p *Player) IdleState() TurnState {
	if p.Kind == KindHuman {
		return TurnWaiting
	}
	return TurnPreMoving
}

// IsHuman reports whether the seat is played by a person.
func (p *Player) IsHuman() bool {
	return p.Kind == KindHuman
}

// SetTarget sets the target space, clamped to the field.
func (p *Player) SetTarget(f *world.Field, i int) {
	p.TargetSpace = f.Clamp(i)
}

// Direction is +1 when the current move heads towards the target space, -1 when it goes back.
func (p *Player) Direction() int {
	if p.TargetSpace >= p.CurrentSpace {
		return 1
	}
	return -1
}

// PlacePawn puts the pawn on the player's current space.
func (p *Player) PlacePawn(f *world.Field) {
	p.Pawn.PlaceAt(f, p.CurrentSpace)
	p.Pawn.Aim(p.CurrentSpace)
}

// PrepareMove starts the move towards TargetSpace. A player never lands on an
// occupied space; it stops on the space before it instead.
func (p *Player) PrepareMove(f *world.Field, now time.Time, rules Rules) []Event {
	var events []Event

	if s := f.Space(p.TargetSpace); s != nil && s.Occupied {
		blocked := p.TargetSpace
		p.TargetSpace = max(0, p.TargetSpace-1)
		events = append(events, Event{Kind: EventTargetOccupied, From: blocked, To: p.TargetSpace})
	}

	if p.TargetSpace != p.CurrentSpace {
		p.Pawn.PlaceAt(f, p.CurrentSpace)
		p.Pawn.Aim(p.CurrentSpace + p.Direction())
		p.Pawn.Delay(now.Add(rules.PawnDelay), PawnPreMoving)
		p.State = TurnMoving
	} else {
		// Nothing to move; still pause so the outcome is visible.
		p.State = TurnDelaying
		p.NextState = TurnPostMoving
		p.ContinueAt = now.Add(rules.PlayerDelay)
	}
	return events
}

// Step advances the player's turn and then its pawn by one frame.
func (p *Player) Step(f *world.Field, now time.Time, dt float64, roller Roller, rules Rules) ([]Event, error) {
	var events []Event

	switch p.State {
	case TurnWaiting, TurnPostMoving:
		// Waiting for the roll control or the turn resolver.

	case TurnPreMoving:
		pips := rules.Roll(roller)
		p.SetTarget(f, p.TargetSpace+pips)
		events = append(events, Event{Kind: EventRolled, Pips: pips, From: p.CurrentSpace, To: p.TargetSpace})
		events = append(events, p.PrepareMove(f, now, rules)...)

	case TurnMoving:
		switch p.Pawn.State {
		case PawnResting, PawnDelaying, PawnPreMoving, PawnMoving:
		case PawnPostMoving:
			if p.Pawn.TargetSpace == p.TargetSpace {
				events = append(events, p.arrive(f))
			} else {
				dir := p.Direction()
				p.Pawn.PlaceAt(f, p.Pawn.CurrentSpace+dir)
				p.Pawn.Aim(p.Pawn.TargetSpace + dir)
				p.Pawn.State = PawnPreMoving
				events = append(events, Event{Kind: EventHop, From: p.Pawn.CurrentSpace, To: p.Pawn.TargetSpace})
			}
		default:
			return events, fmt.Errorf("player %s pawn state %d: %w", p.Name, p.Pawn.State, ErrUnknownState)
		}

	case TurnDelaying:
		if !now.Before(p.ContinueAt) {
			p.State = p.NextState
		}

	default:
		return events, fmt.Errorf("player %s turn state %d: %w", p.Name, p.State, ErrUnknownState)
	}

	if err := p.Pawn.Step(f, now, dt, rules.TranslationsPerSecond); err != nil {
		return events, fmt.Errorf("player %s: %w", p.Name, err)
	}
	return events, nil
}

// arrive completes the move. The vacated space is freed before the new one is
// taken. The start space is shared by every pawn and never counts as occupied.
func (p *Player) arrive(f *world.Field) Event {
	from := p.CurrentSpace
	if s := f.Space(from); s != nil {
		s.Occupied = false
	}
	p.CurrentSpace = p.TargetSpace
	if s := f.Space(p.CurrentSpace); s != nil && s.Type != world.SpaceStart {
		s.Occupied = true
	}
	p.Pawn.State = PawnResting
	p.State = TurnPostMoving
	return Event{Kind: EventArrived, From: from, To: p.CurrentSpace}
}
