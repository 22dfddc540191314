// Package core provides fundamental types and utilities shared by the
// simulation and the terminal presenter. It has no Bubble Tea dependency so
// that game logic stays pure and testable.
package core

import "math"

// Vec2 is a point or displacement in arena coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Norm returns v scaled to unit length, or the zero vector when v is zero.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned bounding box in arena coordinates.
type Box struct {
	Min, Max Vec2
}

// BoxAround returns a box of the given size centered on c.
func BoxAround(c Vec2, w, h float64) Box {
	return Box{
		Min: Vec2{X: c.X - w/2, Y: c.Y - h/2},
		Max: Vec2{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// OverlapsX reports whether the horizontal extents of b and [left, right) overlap.
func (b Box) OverlapsX(left, right float64) bool {
	return b.Min.X < right && b.Max.X > left
}

// WithinY reports whether the vertical extent of b lies fully inside [top, bottom].
func (b Box) WithinY(top, bottom float64) bool {
	return b.Min.Y >= top && b.Max.Y <= bottom
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
