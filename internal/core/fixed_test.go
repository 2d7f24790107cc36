package core

import "testing"

func TestFixedCell(t *testing.T) {
	tests := []struct {
		f    Fixed
		cell int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{15500, 15},
		{-1, -1},
		{-1000, -1},
		{-1001, -2},
	}

	for _, tc := range tests {
		if got := tc.f.Cell(); got != tc.cell {
			t.Errorf("Fixed(%d).Cell() = %d, expected %d", tc.f, got, tc.cell)
		}
	}
}

func TestFixedRound(t *testing.T) {
	if got := Fixed(1499).Round(); got != 1 {
		t.Errorf("Round(1.499) = %d, expected 1", got)
	}
	if got := Fixed(1500).Round(); got != 2 {
		t.Errorf("Round(1.5) = %d, expected 2", got)
	}
	if got := Fixed(-400).Round(); got != 0 {
		t.Errorf("Round(-0.4) = %d, expected 0", got)
	}
}

func TestFixedFromFloat(t *testing.T) {
	if got := FixedFromFloat(0.25); got != 250 {
		t.Errorf("FixedFromFloat(0.25) = %d, expected 250", got)
	}
	if got := FixedFromFloat(-1.5); got != -1500 {
		t.Errorf("FixedFromFloat(-1.5) = %d, expected -1500", got)
	}
}

func TestFixedArithmetic(t *testing.T) {
	f := ToFixed(3)
	if f.Mul(2) != 6000 || f.Div(4) != 750 || f.Div(0) != 0 {
		t.Error("Mul/Div produced wrong values")
	}
	if Fixed(-20).Abs() != 20 || Fixed(-20).Sign() != -1 {
		t.Error("Abs/Sign produced wrong values")
	}
	if ClampFixed(5000, 0, 1000) != 1000 || ClampFixed(-5, 0, 1000) != 0 {
		t.Error("ClampFixed produced wrong values")
	}
}
