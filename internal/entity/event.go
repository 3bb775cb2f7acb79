package entity

// EventKind identifies something a turn step wants the outside world to know.
type EventKind int

const (
	// EventRolled - the die was rolled, Pips holds the value, To the new target
	EventRolled EventKind = iota
	// EventTargetOccupied - the target From was taken, the player stops on To instead
	EventTargetOccupied
	// EventHop - the pawn finished an intermediate hop and starts From -> To
	EventHop
	// EventArrived - the player reached its target and stands on To
	EventArrived
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventRolled:
		return "rolled"
	case EventTargetOccupied:
		return "target_occupied"
	case EventHop:
		return "hop"
	case EventArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Event is an effect produced by a turn step.
type Event struct {
	Kind EventKind
	Pips int // Die value, EventRolled only
	From int // Space index
	To   int // Space index
}
