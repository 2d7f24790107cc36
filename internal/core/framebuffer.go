package core

// FrameBuffer is the in-memory mirror of the LED matrix.
// Pixels are stored in wiring order; (x, y) access goes through Grid.Index.
// Nothing here talks to hardware.
type FrameBuffer struct {
	grid       Grid
	pixels     []Color
	background Color
}

// NewFrameBuffer allocates a buffer sized to the grid, all elements off.
func NewFrameBuffer(g Grid) *FrameBuffer {
	return &FrameBuffer{
		grid:   g,
		pixels: make([]Color, g.Len()),
	}
}

// Grid returns the dimensions the buffer was created with.
func (fb *FrameBuffer) Grid() Grid {
	return fb.grid
}

// Len returns the number of elements.
func (fb *FrameBuffer) Len() int {
	return len(fb.pixels)
}

// Set writes a color at (x, y). Out-of-range coordinates are ignored.
func (fb *FrameBuffer) Set(x, y int, c Color) {
	i := fb.grid.Index(x, y)
	if i == Invalid {
		return
	}
	fb.pixels[i] = c
}

// Get returns the color at (x, y), or the background for out-of-range coordinates.
func (fb *FrameBuffer) Get(x, y int) Color {
	i := fb.grid.Index(x, y)
	if i == Invalid {
		return fb.background
	}
	return fb.pixels[i]
}

// SetLinear writes by wiring index. Out-of-range indices are ignored.
func (fb *FrameBuffer) SetLinear(i int, c Color) {
	if i < 0 || i >= len(fb.pixels) {
		return
	}
	fb.pixels[i] = c
}

// GetLinear reads by wiring index, returning the background when out of range.
func (fb *FrameBuffer) GetLinear(i int) Color {
	if i < 0 || i >= len(fb.pixels) {
		return fb.background
	}
	return fb.pixels[i]
}

// Fill sets every element to c.
func (fb *FrameBuffer) Fill(c Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Clear turns every element off.
func (fb *FrameBuffer) Clear() {
	fb.Fill(Off)
}

// FillRect fills the part of r that lies on the grid.
func (fb *FrameBuffer) FillRect(r Rect, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			fb.Set(x, y, c)
		}
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (fb *FrameBuffer) DrawHLine(x, y, length int, c Color) {
	for i := 0; i < length; i++ {
		fb.Set(x+i, y, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (fb *FrameBuffer) DrawVLine(x, y, length int, c Color) {
	for i := 0; i < length; i++ {
		fb.Set(x, y+i, c)
	}
}

// CopyScaled writes the buffer into dst in wiring order with every channel
// scaled by level. dst must hold at least Len elements.
func (fb *FrameBuffer) CopyScaled(dst []Color, level uint8) {
	for i, c := range fb.pixels {
		dst[i] = c.Scale(level)
	}
}

// Pixels exposes the backing slice in wiring order. Callers must not retain it
// across ticks.
func (fb *FrameBuffer) Pixels() []Color {
	return fb.pixels
}
