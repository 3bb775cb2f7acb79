package game

// Priority is how long a notification should stay on screen.
type Priority int

const (
	PriorityShort Priority = iota
	PriorityLong
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityShort:
		return "short"
	case PriorityLong:
		return "long"
	default:
		return "unknown"
	}
}

// Controls the session shows and hides.
const (
	ControlRoll          = "roll"
	ControlNext          = "next"
	ControlRestart       = "restart"
	ControlCurrentPlayer = "currentPlayer"
)

// Notifier presents what the session decides to tell the user.
type Notifier interface {
	// Notify shows a transient message.
	Notify(text string, priority Priority)
	// SetControlVisible shows or hides a named control.
	SetControlVisible(name string, visible bool)
	// ActivePlayerChanged announces whose turn it is.
	ActivePlayerChanged(name, kindLabel, colorTag string)
}

// NopNotifier discards everything.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Priority)                    {}
func (NopNotifier) SetControlVisible(string, bool)             {}
func (NopNotifier) ActivePlayerChanged(string, string, string) {}
