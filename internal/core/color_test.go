package core

import "testing"

func TestColorScale(t *testing.T) {
	c := RGB(200, 100, 10)

	if got := c.Scale(255); got != c {
		t.Errorf("Scale(255) = %v, expected unchanged", got)
	}
	if got := c.Scale(0); !got.IsOff() {
		t.Errorf("Scale(0) = %v, expected off", got)
	}
	if got := c.Scale(BrightnessLevel(0.3)); got != RGB(60, 30, 3) {
		t.Errorf("Scale(0.3) = %v, expected #3c1e03", got)
	}
}

func TestColorLerp(t *testing.T) {
	if got := Off.Lerp(White, 5, 10); got != RGB(127, 127, 127) {
		t.Errorf("Lerp half = %v", got)
	}
	if got := Red.Lerp(Blue, 0, 10); got != Red {
		t.Errorf("Lerp start = %v, expected red", got)
	}
	if got := Red.Lerp(Blue, 10, 10); got != Blue {
		t.Errorf("Lerp end = %v, expected blue", got)
	}
}

func TestWheel(t *testing.T) {
	if Wheel(0) != RGB(255, 0, 0) {
		t.Errorf("Wheel(0) = %v", Wheel(0))
	}
	if Wheel(85) != RGB(0, 255, 0) {
		t.Errorf("Wheel(85) = %v", Wheel(85))
	}
	if Wheel(170) != RGB(0, 0, 255) {
		t.Errorf("Wheel(170) = %v", Wheel(170))
	}
}

func TestBrightnessLevel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0}, {0, 0}, {0.3, 77}, {1, 255}, {2, 255},
	}
	for _, tc := range tests {
		if got := BrightnessLevel(tc.in); got != tc.want {
			t.Errorf("BrightnessLevel(%v) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
