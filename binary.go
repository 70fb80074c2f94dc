package grayproc

import (
	"image"

	"grayproc/internal/pixelops"
	"grayproc/pkg/raster"
)

// Binary is the result of a threshold: an 8-bit raster whose samples are
// exactly 0 or 255. The zero Binary holds no raster.
type Binary struct {
	img *raster.Raster[uint8]
}

// Width returns the image width in pixels, zero for a zero Binary.
func (b Binary) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Width
}

// Height returns the image height in pixels, zero for a zero Binary.
func (b Binary) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Height
}

// At reports whether the pixel at (x, y) is marked.
func (b Binary) At(x, y int) bool {
	return b.img.At(x, y) != 0
}

// Erode shrinks marked regions with a square kernel of size 2*radius+1.
func (b Binary) Erode(radius int) (Binary, error) {
	if b.img == nil {
		return Binary{}, &UnsupportedSampleTypeError{}
	}
	out, err := pixelops.Erode(b.img, radius)
	return binaryResult(out, err, "erode")
}

// Dilate grows marked regions with a square kernel of size 2*radius+1.
func (b Binary) Dilate(radius int) (Binary, error) {
	if b.img == nil {
		return Binary{}, &UnsupportedSampleTypeError{}
	}
	out, err := pixelops.Dilate(b.img, radius)
	return binaryResult(out, err, "dilate")
}

// Invert swaps marked and unmarked pixels.
func (b Binary) Invert() Binary {
	if b.img == nil {
		return Binary{}
	}
	out := b.img.NewSameShape()
	for i, v := range b.img.Pix {
		if v == 0 {
			out.Pix[i] = 255
		}
	}
	return Binary{img: out}
}

// CountOnes returns the number of marked pixels.
func (b Binary) CountOnes() int {
	if b.img == nil {
		return 0
	}
	n := 0
	for _, v := range b.img.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// ToGray returns the mask as an 8-bit Gray with freshly allocated pixel
// data.
func (b Binary) ToGray() Gray {
	if b.img == nil {
		return Gray{}
	}
	return Gray{u8: b.img.Clone()}
}

// ToImage renders the mask as RGBA, marked pixels white.
func (b Binary) ToImage() (*image.RGBA, error) {
	if b.img == nil {
		return nil, &UnsupportedSampleTypeError{}
	}
	return rgbaFromGray(b.img), nil
}
