package pixelops

import (
	"fmt"
	"image"

	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// claheClipLimit is high enough that contrast limiting rarely engages,
// approximating plain local histogram equalization.
const claheClipLimit = 40.0

// Equalize applies global histogram equalization to an 8-bit raster.
func Equalize(src *raster.Raster[uint8]) (*raster.Raster[uint8], error) {
	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.EqualizeHist(m, &dst)

	return rasterLike(dst, src)
}

// EqualizeLocal applies adaptive histogram equalization with the tile grid
// derived from the window radius: each tile spans roughly 2*radius+1
// pixels.
func EqualizeLocal(src *raster.Raster[uint8], radius int) (*raster.Raster[uint8], error) {
	if radius < 1 {
		return nil, fmt.Errorf("equalize radius must be at least 1, got %d", radius)
	}

	tile := 2*radius + 1
	tilesX := src.Width / tile
	if tilesX < 1 {
		tilesX = 1
	}
	tilesY := src.Height / tile
	if tilesY < 1 {
		tilesY = 1
	}

	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	clahe := gocv.NewCLAHEWithParams(claheClipLimit, image.Point{tilesX, tilesY})
	defer clahe.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	clahe.Apply(m, &dst)

	return rasterLike(dst, src)
}

// Sharpen4 convolves with the 3x3 connect-4 sharpen kernel.
func Sharpen4(src *raster.Raster[uint8]) (*raster.Raster[uint8], error) {
	return convolve3x3(src, [9]float32{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	})
}

// Sharpen8 convolves with the 3x3 connect-8 sharpen kernel.
func Sharpen8(src *raster.Raster[uint8]) (*raster.Raster[uint8], error) {
	return convolve3x3(src, [9]float32{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	})
}

// convolve3x3 filters an 8-bit raster with a 3x3 kernel, saturating the
// result to [0, 255].
func convolve3x3(src *raster.Raster[uint8], values [9]float32) (*raster.Raster[uint8], error) {
	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	kernel := kernelMat(3, 3, values[:])
	defer kernel.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Filter2D(m, &dst, -1, kernel, image.Point{-1, -1}, 0, gocv.BorderReplicate)

	return rasterLike(dst, src)
}

// kernelMat builds a rows x cols CV32F kernel from row-major values.
func kernelMat(rows, cols int, values []float32) gocv.Mat {
	k := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)
	for i, v := range values {
		k.SetFloatAt(i/cols, i%cols, v)
	}
	return k
}
