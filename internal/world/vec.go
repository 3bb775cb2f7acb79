package world

import "math"

// Vec2 is a point or direction on the tracked plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// SquaredDist returns the squared distance between v and o.
func (v Vec2) SquaredDist(o Vec2) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y
}

// Bearing returns the angle of the direction from v to o in degrees,
// normalized to [-180, 180].
func (v Vec2) Bearing(o Vec2) float64 {
	d := o.Sub(v)
	angle := math.Atan2(d.Y, d.X) * 180 / math.Pi
	for angle < -180 {
		angle += 360
	}
	for angle > 180 {
		angle -= 360
	}
	return angle
}
