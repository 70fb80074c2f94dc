package grayproc

import (
	"fmt"

	"grayproc/internal/pixelops"
	"grayproc/pkg/raster"
)

// Gradient holds the two first-derivative components of an image, always
// in the floating-point domain.
type Gradient struct {
	dx *raster.Raster[float32]
	dy *raster.Raster[float32]
}

// GradientSobel computes derivatives with the 3x3 Sobel operator.
func (g Gray) GradientSobel() (Gradient, error) {
	return g.gradient("sobel gradient",
		pixelops.GradientSobel[uint8], pixelops.GradientSobel[float32])
}

// GradientPrewitt computes derivatives with the 3x3 Prewitt operator.
func (g Gray) GradientPrewitt() (Gradient, error) {
	return g.gradient("prewitt gradient",
		pixelops.GradientPrewitt[uint8], pixelops.GradientPrewitt[float32])
}

// GradientThree computes centered differences.
func (g Gray) GradientThree() (Gradient, error) {
	return g.gradient("three gradient",
		pixelops.GradientThree[uint8], pixelops.GradientThree[float32])
}

// GradientTwo0 computes forward differences.
func (g Gray) GradientTwo0() (Gradient, error) {
	return g.gradient("two0 gradient",
		pixelops.GradientTwo0[uint8], pixelops.GradientTwo0[float32])
}

// GradientTwo1 computes backward differences.
func (g Gray) GradientTwo1() (Gradient, error) {
	return g.gradient("two1 gradient",
		pixelops.GradientTwo1[uint8], pixelops.GradientTwo1[float32])
}

type gradientFunc[T raster.Sample] func(*raster.Raster[T]) (*raster.Raster[float32], *raster.Raster[float32], error)

func (g Gray) gradient(op string, u8 gradientFunc[uint8], f32 gradientFunc[float32]) (Gradient, error) {
	switch {
	case g.u8 != nil:
		dx, dy, err := u8(g.u8)
		if err != nil {
			return Gradient{}, fmt.Errorf("%s: %w", op, err)
		}
		return Gradient{dx: dx, dy: dy}, nil
	case g.f32 != nil:
		dx, dy, err := f32(g.f32)
		if err != nil {
			return Gradient{}, fmt.Errorf("%s: %w", op, err)
		}
		return Gradient{dx: dx, dy: dy}, nil
	}
	return Gradient{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// DX returns the horizontal derivative as a Gray. The raster is shared
// with the Gradient, not copied.
func (gr Gradient) DX() Gray {
	return FromF32(gr.dx)
}

// DY returns the vertical derivative as a Gray. The raster is shared with
// the Gradient, not copied.
func (gr Gradient) DY() Gray {
	return FromF32(gr.dy)
}

// Magnitude returns sqrt(dx*dx + dy*dy) as a floating-point Gray.
func (gr Gradient) Magnitude() (Gray, error) {
	if gr.dx == nil || gr.dy == nil {
		return Gray{}, &UnsupportedSampleTypeError{}
	}
	out, err := pixelops.Magnitude(gr.dx, gr.dy)
	if err != nil {
		return Gray{}, fmt.Errorf("gradient magnitude: %w", err)
	}
	return Gray{f32: out}, nil
}
