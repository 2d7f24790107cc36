package core

// Invalid is the index returned for coordinates outside the grid.
const Invalid = -1

// Grid holds the fixed dimensions of the LED matrix.
// Rows are wired serpentine: even rows run left to right, odd rows right to left.
type Grid struct {
	W, H int
}

// NewGrid creates a grid with the given width and height.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Len returns the number of physical elements.
func (g Grid) Len() int {
	return g.W * g.H
}

// InBounds reports whether (x, y) addresses an element of the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index maps a grid coordinate to its position on the data line.
// Returns Invalid for coordinates outside the grid.
func (g Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		return Invalid
	}
	if y%2 == 0 {
		return y*g.W + x
	}
	return y*g.W + (g.W - 1 - x)
}

// Coord is the inverse of Index. ok is false for indices outside [0, Len).
func (g Grid) Coord(i int) (x, y int, ok bool) {
	if i < 0 || i >= g.Len() {
		return 0, 0, false
	}
	y = i / g.W
	x = i % g.W
	if y%2 == 1 {
		x = g.W - 1 - x
	}
	return x, y, true
}

// Center returns the middle cell, rounding toward the bottom-right.
func (g Grid) Center() (int, int) {
	return g.W / 2, g.H / 2
}

// Bounds returns the whole grid as a rectangle.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.W, g.H)
}
