package common

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{"zero", 0, 0, 0, 0},
		{"axis", 3, 0, 1, 0},
		{"diagonal", 1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Normalize(tc.x, tc.y)
			if math.Abs(x-tc.wx) > 1e-9 || math.Abs(y-tc.wy) > 1e-9 {
				t.Fatalf("Normalize(%v,%v) = %v,%v want %v,%v", tc.x, tc.y, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 5); got != 0 {
		t.Fatalf("Clamp low = %d", got)
	}
	if got := Clamp(9, 0, 5); got != 5 {
		t.Fatalf("Clamp high = %d", got)
	}
	if got := Clamp(3, 0, 5); got != 3 {
		t.Fatalf("Clamp mid = %d", got)
	}
}
