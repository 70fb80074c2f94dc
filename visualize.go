package grayproc

import (
	"image"
	"image/color"

	"grayproc/internal/pixelops"
	"grayproc/pkg/raster"
)

// VisualizeSign renders signed data for inspection: positive samples in
// red, negative in green, scaled so the largest magnitude saturates its
// channel. Zero samples render black.
func (g Gray) VisualizeSign() (*image.RGBA, error) {
	switch {
	case g.u8 != nil:
		return signImage(g.u8), nil
	case g.f32 != nil:
		return signImage(g.f32), nil
	}
	return nil, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

func signImage[T raster.Sample](r *raster.Raster[T]) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	maxAbs := pixelops.MaxAbs(r)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			v := float64(r.At(x, y))
			c := color.RGBA{A: 255}
			if v > 0 {
				c.R = raster.ClampU8(255 * v / maxAbs)
			} else if v < 0 {
				c.G = raster.ClampU8(255 * -v / maxAbs)
			}
			out.SetRGBA(x, y, c)
		}
	}
	return out
}
