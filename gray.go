package grayproc

import (
	"image"
	"image/draw"

	"grayproc/pkg/raster"
)

// Gray wraps a single-band raster of either sample domain. The zero Gray
// holds no raster; every operation on it fails with
// UnsupportedSampleTypeError.
type Gray struct {
	u8  *raster.Raster[uint8]
	f32 *raster.Raster[float32]
}

// NewU8 returns a Gray backed by a zeroed 8-bit raster.
func NewU8(width, height int) Gray {
	return Gray{u8: raster.NewU8(width, height)}
}

// NewF32 returns a Gray backed by a zeroed floating-point raster.
func NewF32(width, height int) Gray {
	return Gray{f32: raster.NewF32(width, height)}
}

// FromU8 wraps an existing 8-bit raster without copying.
func FromU8(r *raster.Raster[uint8]) Gray {
	if r == nil {
		return Gray{}
	}
	return Gray{u8: r}
}

// FromF32 wraps an existing floating-point raster without copying.
func FromF32(r *raster.Raster[float32]) Gray {
	if r == nil {
		return Gray{}
	}
	return Gray{f32: r}
}

// FromImage converts a decoded image to an 8-bit Gray using the standard
// luminance conversion.
func FromImage(img image.Image) Gray {
	return Gray{u8: raster.FromImage(img)}
}

// Domain returns the sample domain tag, or the invalid zero Domain for a
// zero Gray.
func (g Gray) Domain() raster.Domain {
	switch {
	case g.u8 != nil:
		return raster.DomainU8
	case g.f32 != nil:
		return raster.DomainF32
	}
	return 0
}

// Width returns the image width in pixels, zero for a zero Gray.
func (g Gray) Width() int {
	switch {
	case g.u8 != nil:
		return g.u8.Width
	case g.f32 != nil:
		return g.f32.Width
	}
	return 0
}

// Height returns the image height in pixels, zero for a zero Gray.
func (g Gray) Height() int {
	switch {
	case g.u8 != nil:
		return g.u8.Height
	case g.f32 != nil:
		return g.f32.Height
	}
	return 0
}

// At returns the sample at (x, y) as a float64 regardless of domain.
func (g Gray) At(x, y int) float64 {
	switch {
	case g.u8 != nil:
		return float64(g.u8.At(x, y))
	case g.f32 != nil:
		return float64(g.f32.At(x, y))
	}
	return 0
}

// RasterU8 returns the wrapped 8-bit raster, or false when the Gray holds
// a different domain. The raster is shared, not copied.
func (g Gray) RasterU8() (*raster.Raster[uint8], bool) {
	return g.u8, g.u8 != nil
}

// RasterF32 returns the wrapped floating-point raster, or false when the
// Gray holds a different domain. The raster is shared, not copied.
func (g Gray) RasterF32() (*raster.Raster[float32], bool) {
	return g.f32, g.f32 != nil
}

// requireU8 unwraps the 8-bit raster for operations that exist only in
// that domain.
func (g Gray) requireU8(op string) (*raster.Raster[uint8], error) {
	switch {
	case g.u8 != nil:
		return g.u8, nil
	case g.f32 != nil:
		return nil, &InvalidImageTypeError{Op: op, Domain: raster.DomainF32}
	}
	return nil, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// ToU8 converts to the 8-bit domain, rounding and clamping floating-point
// samples to [0, 255]. The result always owns freshly allocated pixel data,
// even when the receiver is already 8-bit.
func (g Gray) ToU8() (Gray, error) {
	switch {
	case g.u8 != nil:
		return Gray{u8: g.u8.Clone()}, nil
	case g.f32 != nil:
		out := raster.NewU8(g.f32.Width, g.f32.Height)
		for i, v := range g.f32.Pix {
			out.Pix[i] = raster.ClampU8(float64(v))
		}
		return Gray{u8: out}, nil
	}
	return Gray{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// ToF32 converts to the floating-point domain. The result always owns
// freshly allocated pixel data, even when the receiver is already
// floating point.
func (g Gray) ToF32() (Gray, error) {
	switch {
	case g.f32 != nil:
		return Gray{f32: g.f32.Clone()}, nil
	case g.u8 != nil:
		out := raster.NewF32(g.u8.Width, g.u8.Height)
		for i, v := range g.u8.Pix {
			out.Pix[i] = float32(v)
		}
		return Gray{f32: out}, nil
	}
	return Gray{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// ToImage renders the image as RGBA with the intensity broadcast to all
// three color channels. Floating-point samples are rounded and clamped.
func (g Gray) ToImage() (*image.RGBA, error) {
	switch {
	case g.u8 != nil:
		return rgbaFromGray(g.u8), nil
	case g.f32 != nil:
		return rgbaFromGray(g.f32), nil
	}
	return nil, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

func rgbaFromGray[T raster.Sample](r *raster.Raster[T]) *image.RGBA {
	gray := r.GrayImage()
	out := image.NewRGBA(gray.Bounds())
	draw.Draw(out, out.Bounds(), gray, image.Point{}, draw.Src)
	return out
}
