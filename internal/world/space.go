// Package world provides the board model: the player-built path of spaces.
package world

// SpaceType classifies a space on the path.
type SpaceType int

const (
	// SpaceStart is the first space created. Every pawn begins here.
	SpaceStart SpaceType = iota
	// SpaceNormal is a plain space with no effect.
	SpaceNormal
	// SpaceSpecial sends a pawn that ends its move here a random distance forward or back.
	SpaceSpecial
	// SpaceTarget is the most recently created space. Reaching it wins the game.
	SpaceTarget
)

// String returns a human-readable space type name.
func (t SpaceType) String() string {
	switch t {
	case SpaceStart:
		return "start"
	case SpaceNormal:
		return "normal"
	case SpaceSpecial:
		return "special"
	case SpaceTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Rune returns the space's display character.
func (t SpaceType) Rune() rune {
	switch t {
	case SpaceStart:
		return 'S'
	case SpaceNormal:
		return 'o'
	case SpaceSpecial:
		return '?'
	case SpaceTarget:
		return 'Z'
	default:
		return '#'
	}
}

// Space is a single cell of the board path.
type Space struct {
	ID       int       // Index in the field's sequence
	Type     SpaceType // Start, normal, special or target
	Position Vec2      // Centre on the tracked plane
	Angle    float64   // Marker orientation in degrees, only set on the start space
	Occupied bool      // A pawn has finished its move here
}

// Toggleable reports whether a tap may switch the space between normal and special.
func (s Space) Toggleable() bool {
	return s.Type == SpaceNormal || s.Type == SpaceSpecial
}
