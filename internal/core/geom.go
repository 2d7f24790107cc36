// Package core provides the grid, frame buffer and integer geometry shared by
// every game. It has no knowledge of hardware or terminals.
package core

// Rect is an axis-aligned bounding box with half-open extents:
// it covers [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlap is the AABB test used by every collision check.
func Overlap(a, b Rect) bool {
	return a.Intersects(b)
}

// Number is the set of integer types positions and velocities are built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Vec is a 2D position or velocity.
type Vec[T Number] struct {
	X, Y T
}

// Add returns v + o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Axis selects a vector component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Reflect negates the component of v along axis.
func Reflect[T Number](v Vec[T], axis Axis) Vec[T] {
	switch axis {
	case AxisX:
		v.X = -v.X
	case AxisY:
		v.Y = -v.Y
	}
	return v
}

// ClampToGrid moves pos so a box of the given size stays inside the grid.
// Boxes larger than the grid are pinned to the origin on that axis.
func ClampToGrid(pos, size Vec[int], g Grid) Vec[int] {
	return Vec[int]{
		X: Clamp(pos.X, 0, Max(0, g.W-size.X)),
		Y: Clamp(pos.Y, 0, Max(0, g.H-size.Y)),
	}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
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
