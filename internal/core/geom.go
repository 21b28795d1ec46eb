// Package core provides fundamental types and utilities shared by the game
// and its platform adapters. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box.
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

// Overlaps reports whether two extents touch or overlap.
// Edges are inclusive: rectangles sharing a border overlap.
func Overlaps(a, b Rect) bool {
	if a.X > b.Right() || a.Right() < b.X {
		return false
	}
	if a.Y > b.Bottom() || a.Bottom() < b.Y {
		return false
	}
	return true
}

// Overlaps is the method form of the package-level Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// Intersects returns true if the interiors of two rectangles overlap.
// Unlike Overlaps, rectangles that merely share an edge do not intersect;
// screen layout uses this half-open form.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
