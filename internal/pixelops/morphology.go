package pixelops

import (
	"fmt"
	"image"

	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// Erode shrinks the on regions of a binary raster with a square kernel of
// size 2*radius+1.
func Erode(src *raster.Raster[uint8], radius int) (*raster.Raster[uint8], error) {
	return morphology(src, radius, false)
}

// Dilate grows the on regions of a binary raster with a square kernel of
// size 2*radius+1.
func Dilate(src *raster.Raster[uint8], radius int) (*raster.Raster[uint8], error) {
	return morphology(src, radius, true)
}

func morphology(src *raster.Raster[uint8], radius int, dilate bool) (*raster.Raster[uint8], error) {
	if radius < 1 {
		return nil, fmt.Errorf("morphology radius must be at least 1, got %d", radius)
	}

	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	k := 2*radius + 1
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{k, k})
	defer kernel.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	if dilate {
		gocv.Dilate(m, &dst, kernel)
	} else {
		gocv.Erode(m, &dst, kernel)
	}

	return binaryFrom(dst)
}
