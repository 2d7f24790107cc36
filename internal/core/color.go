package core

import "fmt"

// Color is the intensity of one element. W is only transmitted on
// four-channel strips and stays zero otherwise.
type Color struct {
	R, G, B, W uint8
}

// RGB builds a three-channel color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors used by the games.
var (
	Off     = Color{}
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Orange  = RGB(255, 128, 0)
	Purple  = RGB(128, 0, 255)
	Pink    = RGB(255, 105, 180)
	Gray    = RGB(50, 50, 50)
)

// IsOff reports whether every channel is zero.
func (c Color) IsOff() bool {
	return c == Off
}

// Scale multiplies every channel by level/255.
func (c Color) Scale(level uint8) Color {
	if level == 255 {
		return c
	}
	l := uint16(level)
	return Color{
		R: uint8(uint16(c.R) * l / 255),
		G: uint8(uint16(c.G) * l / 255),
		B: uint8(uint16(c.B) * l / 255),
		W: uint8(uint16(c.W) * l / 255),
	}
}

// Lerp blends from c toward to by step/steps using integer math.
// step <= 0 yields c, step >= steps yields to.
func (c Color) Lerp(to Color, step, steps int) Color {
	if steps <= 0 || step >= steps {
		return to
	}
	if step <= 0 {
		return c
	}
	mix := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*step/steps)
	}
	return Color{R: mix(c.R, to.R), G: mix(c.G, to.G), B: mix(c.B, to.B), W: mix(c.W, to.W)}
}

// Wheel maps 0..255 onto a red-green-blue hue circle.
func Wheel(pos uint8) Color {
	p := int(pos)
	switch {
	case p < 85:
		return RGB(uint8(255-p*3), uint8(p*3), 0)
	case p < 170:
		p -= 85
		return RGB(0, uint8(255-p*3), uint8(p*3))
	default:
		p -= 170
		return RGB(uint8(p*3), 0, uint8(255-p*3))
	}
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// BrightnessLevel converts a 0..1 factor into a Scale level.
// Used once at startup; the tick loop only sees the integer level.
func BrightnessLevel(factor float64) uint8 {
	if factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return 255
	}
	return uint8(factor*255 + 0.5)
}
