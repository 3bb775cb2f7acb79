package world

const (
	// DefaultCapacity is the maximum number of spaces a field holds.
	DefaultCapacity = 100
	// DefaultSpaceRadius is the radius of a space on the tracked plane.
	DefaultSpaceRadius = 10.0
)

// Field is the ordered, append-only path of spaces built during setup.
// Spaces are addressed by index; indices stay valid until Reset.
type Field struct {
	spaces   []Space
	capacity int
	radius   float64
}

// NewField creates an empty field.
func NewField(capacity int, radius float64) *Field {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if radius <= 0 {
		radius = DefaultSpaceRadius
	}
	return &Field{
		spaces:   make([]Space, 0, capacity),
		capacity: capacity,
		radius:   radius,
	}
}

// Len returns the number of spaces.
func (f *Field) Len() int {
	return len(f.spaces)
}

// LastIndex returns the index of the target space, or -1 if the field is empty.
func (f *Field) LastIndex() int {
	return len(f.spaces) - 1
}

// Capacity returns the maximum number of spaces.
func (f *Field) Capacity() int {
	return f.capacity
}

// Space returns the space at index i, or nil if i is out of range.
func (f *Field) Space(i int) *Space {
	if i < 0 || i >= len(f.spaces) {
		return nil
	}
	return &f.spaces[i]
}

// Spaces returns the spaces in creation order. The slice aliases the field.
func (f *Field) Spaces() []Space {
	return f.spaces
}

// Clamp limits i to [0, LastIndex]. An empty field clamps everything to 0.
func (f *Field) Clamp(i int) int {
	return max(0, min(i, f.LastIndex()))
}

// CanPlace reports whether a new space at p keeps more than two radii
// of distance to every existing space.
func (f *Field) CanPlace(p Vec2) bool {
	for i := range f.spaces {
		if p.Dist(f.spaces[i].Position) <= 2*f.radius {
			return false
		}
	}
	return true
}

// CreateSpace appends a space at p and returns its index. It does not check
// CanPlace. Once the field is full the call is ignored and ok is false.
func (f *Field) CreateSpace(p Vec2) (index int, ok bool) {
	if len(f.spaces) == f.capacity {
		return -1, false
	}

	space := Space{
		ID:       len(f.spaces),
		Position: p,
	}

	switch len(f.spaces) {
	case 0:
		space.Type = SpaceStart
	case 1:
		space.Type = SpaceTarget
		// Orients the start marker along the path.
		f.spaces[0].Angle = f.spaces[0].Position.Bearing(p)
	default:
		space.Type = SpaceTarget
		f.spaces[len(f.spaces)-1].Type = SpaceNormal
	}

	f.spaces = append(f.spaces, space)
	return space.ID, true
}

// SelectSpace returns the index of the first space within one radius of p.
func (f *Field) SelectSpace(p Vec2) (int, bool) {
	for i := range f.spaces {
		if p.Dist(f.spaces[i].Position) <= f.radius {
			return i, true
		}
	}
	return -1, false
}

// ToggleSpecial switches the space at i between normal and special.
// Start and target spaces are left alone.
func (f *Field) ToggleSpecial(i int) bool {
	s := f.Space(i)
	if s == nil || !s.Toggleable() {
		return false
	}
	if s.Type == SpaceNormal {
		s.Type = SpaceSpecial
	} else {
		s.Type = SpaceNormal
	}
	return true
}

// Reset empties the field.
func (f *Field) Reset() {
	f.spaces = f.spaces[:0]
}
