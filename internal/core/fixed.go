package core

// FixedScale is the number of fixed-point units per cell.
const FixedScale = 1000

// Fixed is a fixed-point cell coordinate or velocity (scaled by FixedScale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * FixedScale)
}

// FixedFromFloat converts a configuration value. Not used inside the tick loop.
func FixedFromFloat(f float64) Fixed {
	if f < 0 {
		return -Fixed(-f*FixedScale + 0.5)
	}
	return Fixed(f*FixedScale + 0.5)
}

// Cell returns the cell containing f, rounding toward negative infinity.
func (f Fixed) Cell() int {
	if f < 0 {
		return -int((-f + FixedScale - 1) / FixedScale)
	}
	return int(f) / FixedScale
}

// Round returns the nearest cell.
func (f Fixed) Round() int {
	return (f + FixedScale/2).Cell()
}

// Mul multiplies by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides by an integer. Division by zero yields zero.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	return Sign(int(f))
}

// ClampFixed restricts f to [lo, hi].
func ClampFixed(f, lo, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// MulFixed multiplies two fixed-point values.
func (f Fixed) MulFixed(o Fixed) Fixed {
	return Fixed(int(f) * int(o) / FixedScale)
}
