package grayproc

import (
	"grayproc/internal/pixelops"
)

// Mean returns the average sample value, zero for a zero Gray.
func (g Gray) Mean() float64 {
	switch {
	case g.u8 != nil:
		return pixelops.Mean(g.u8)
	case g.f32 != nil:
		return pixelops.Mean(g.f32)
	}
	return 0
}

// Max returns the largest sample value, zero for a zero Gray.
func (g Gray) Max() float64 {
	switch {
	case g.u8 != nil:
		return pixelops.Max(g.u8)
	case g.f32 != nil:
		return pixelops.Max(g.f32)
	}
	return 0
}

// MaxAbs returns the largest absolute sample value, zero for a zero Gray.
func (g Gray) MaxAbs() float64 {
	switch {
	case g.u8 != nil:
		return pixelops.MaxAbs(g.u8)
	case g.f32 != nil:
		return pixelops.MaxAbs(g.f32)
	}
	return 0
}

// Sum returns the sum of all sample values, zero for a zero Gray.
func (g Gray) Sum() float64 {
	switch {
	case g.u8 != nil:
		return pixelops.Sum(g.u8)
	case g.f32 != nil:
		return pixelops.Sum(g.f32)
	}
	return 0
}

// Histogram counts sample values into 256 bins. 8-bit images only.
func (g Gray) Histogram() ([256]int, error) {
	img, err := g.requireU8("histogram")
	if err != nil {
		return [256]int{}, err
	}
	return pixelops.Histogram(img), nil
}
