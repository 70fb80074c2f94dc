package colorutil

import (
	"math"
	"testing"
)

func TestHSVToRGBKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b float64
	}{
		{"red", 0, 255, 255, 255, 0, 0},
		{"green", 60, 255, 255, 0, 255, 0},
		{"blue", 120, 255, 255, 0, 0, 255},
		{"yellow", 30, 255, 255, 255, 255, 0},
		{"cyan", 90, 255, 255, 0, 255, 255},
		{"gray", 0, 0, 128, 128, 128, 128},
		{"black", 0, 0, 0, 0, 0, 0},
		{"half red", 0, 255, 128, 128, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, tt.s, tt.v)
			if math.Abs(r-tt.r) > 0.5 || math.Abs(g-tt.g) > 0.5 || math.Abs(b-tt.b) > 0.5 {
				t.Fatalf("RGB = (%.1f, %.1f, %.1f), want (%.1f, %.1f, %.1f)",
					r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSVToRGBStaysInRange(t *testing.T) {
	for h := 0.0; h < 180; h += 7.5 {
		for _, s := range []float64{0, 64, 255} {
			for _, v := range []float64{0, 100, 255} {
				r, g, b := HSVToRGB(h, s, v)
				for _, c := range []float64{r, g, b} {
					if c < 0 || c > 255 {
						t.Fatalf("HSVToRGB(%v, %v, %v) channel %v out of range", h, s, v, c)
					}
				}
			}
		}
	}
}
