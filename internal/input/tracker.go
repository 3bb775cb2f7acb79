package input

import (
	"time"

	"github.com/abertram/Invisiboga/internal/world"
)

// Action is a raw touch event type.
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
)

// Projection maps a screen position onto the tracked plane.
type Projection func(screen world.Vec2) world.Vec2

// Tracker follows a single touch and classifies it.
type Tracker struct {
	thresholds Thresholds
	project    Projection

	active    bool
	start     world.Vec2 // Screen position where the touch went down
	current   world.Vec2 // Latest screen position
	startTime time.Time
}

// NewTracker creates a tracker. A nil projection leaves positions unchanged.
func NewTracker(thresholds Thresholds, project Projection) *Tracker {
	if project == nil {
		project = func(p world.Vec2) world.Vec2 { return p }
	}
	return &Tracker{thresholds: thresholds, project: project}
}

// Thresholds returns the tap thresholds.
func (t *Tracker) Thresholds() Thresholds {
	return t.thresholds
}

// Handle records a raw touch event. Releasing a touch that stayed within the
// tap thresholds yields a Tap at the position where it went down.
func (t *Tracker) Handle(action Action, screen world.Vec2, now time.Time) (Gesture, bool) {
	switch action {
	case ActionDown:
		t.active = true
		t.start = screen
		t.current = screen
		t.startTime = now

	case ActionMove:
		if t.active {
			t.current = screen
		}

	case ActionUp:
		if !t.active {
			return Gesture{}, false
		}
		t.active = false
		t.current = screen
		elapsed := now.Sub(t.startTime)
		sq := t.start.SquaredDist(t.current)
		if t.thresholds.IsTap(elapsed, sq) {
			return Gesture{
				Kind:            Tap,
				Position:        t.project(t.start),
				Elapsed:         elapsed,
				SquaredDistance: sq,
			}, true
		}

	case ActionCancel:
		t.active = false
	}
	return Gesture{}, false
}

// Pressed reports whether a touch is held.
func (t *Tracker) Pressed() bool {
	return t.active
}

// Active returns a DragActive gesture at the finger's position while a touch is held.
func (t *Tracker) Active(now time.Time) (Gesture, bool) {
	if !t.active {
		return Gesture{}, false
	}
	return Gesture{
		Kind:            DragActive,
		Position:        t.project(t.current),
		Elapsed:         now.Sub(t.startTime),
		SquaredDistance: t.start.SquaredDist(t.current),
	}, true
}
