package raster

import (
	"image"
	"image/color"
)

// FromImage converts a decoded image to an 8-bit raster. Grayscale images
// are copied directly; anything else goes through the standard luminance
// conversion.
func FromImage(img image.Image) *Raster[uint8] {
	bounds := img.Bounds()
	out := NewU8(bounds.Dx(), bounds.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < out.Height; y++ {
			src := gray.Pix[y*gray.Stride : y*gray.Stride+out.Width]
			copy(out.Pix[y*out.Width:(y+1)*out.Width], src)
		}
		return out
	}

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			out.Pix[y*out.Width+x] = c.Y
		}
	}
	return out
}

// GrayImage returns the raster as a standard library grayscale image.
// The pixel data is copied.
func (r *Raster[T]) GrayImage() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out.Pix[y*out.Stride+x] = ClampU8(float64(r.Pix[y*r.Width+x]))
		}
	}
	return out
}

// ClampU8 rounds to the nearest integer and clamps to [0, 255].
func ClampU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
