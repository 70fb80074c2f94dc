package pixelops

import (
	"fmt"
	"image"

	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// BlurMean applies a normalized box filter with a square kernel of size
// 2*radius+1.
func BlurMean[T raster.Sample](src *raster.Raster[T], radius int) (*raster.Raster[T], error) {
	if radius < 1 {
		return nil, fmt.Errorf("blur radius must be at least 1, got %d", radius)
	}

	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	k := 2*radius + 1
	gocv.Blur(m, &dst, image.Point{k, k})

	return rasterLike(dst, src)
}

// BlurMedian applies a median filter with a square kernel of size
// 2*radius+1. The engine restricts float images to radius 1 or 2; larger
// windows are only available for 8-bit images.
func BlurMedian[T raster.Sample](src *raster.Raster[T], radius int) (*raster.Raster[T], error) {
	if radius < 1 {
		return nil, fmt.Errorf("blur radius must be at least 1, got %d", radius)
	}
	if src.Domain() == raster.DomainF32 && radius > 2 {
		return nil, fmt.Errorf("median blur on float images supports radius 1 or 2, got %d", radius)
	}

	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.MedianBlur(m, &dst, 2*radius+1)

	return rasterLike(dst, src)
}

// BlurGaussian applies a Gaussian filter. A positive radius fixes the
// kernel size at 2*radius+1; radius < 1 lets the engine derive the kernel
// from sigma, and sigma <= 0 derives sigma from the kernel. At least one
// of the two must be set.
func BlurGaussian[T raster.Sample](src *raster.Raster[T], sigma float64, radius int) (*raster.Raster[T], error) {
	if sigma <= 0 && radius < 1 {
		return nil, fmt.Errorf("gaussian blur needs a positive sigma or radius")
	}

	k := 0
	if radius >= 1 {
		k = 2*radius + 1
	}
	if sigma < 0 {
		sigma = 0
	}

	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.GaussianBlur(m, &dst, image.Point{k, k}, sigma, sigma, gocv.BorderDefault)

	return rasterLike(dst, src)
}
