// Package input turns raw touch events into the tap and drag gestures the game understands.
package input

import (
	"time"

	"github.com/abertram/Invisiboga/internal/world"
)

// Kind is the classification of a gesture.
type Kind int

const (
	// Tap is a short touch that barely moved. It is reported once, on release.
	Tap Kind = iota
	// DragActive is a touch that is still held. It is reported once per frame.
	DragActive
)

// String returns a human-readable gesture name.
func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case DragActive:
		return "drag_active"
	default:
		return "unknown"
	}
}

// Gesture is a classified touch, already projected onto the tracked plane.
type Gesture struct {
	Kind            Kind
	Position        world.Vec2    // World position: the start point for a tap, the finger for a drag
	Elapsed         time.Duration // Time since the touch went down
	SquaredDistance float64       // Squared screen distance between start and last position
}

// Thresholds decide whether a touch still counts as a tap.
type Thresholds struct {
	MaxTapTime            time.Duration
	MaxTapSquaredDistance float64
}

// DefaultThresholds returns 200ms and 400 squared pixels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxTapTime:            200 * time.Millisecond,
		MaxTapSquaredDistance: 400,
	}
}

// IsTap reports whether a touch of the given age and displacement is a tap.
func (th Thresholds) IsTap(elapsed time.Duration, squaredDistance float64) bool {
	return elapsed <= th.MaxTapTime && squaredDistance <= th.MaxTapSquaredDistance
}

// IsDrag reports whether a held touch has left tap range and may draw a path.
func (th Thresholds) IsDrag(g Gesture) bool {
	return g.Elapsed > th.MaxTapTime || g.SquaredDistance > th.MaxTapSquaredDistance
}
