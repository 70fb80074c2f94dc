package pixelops

import (
	"math"

	"grayproc/pkg/raster"
)

// Mean returns the average pixel value, or 0 for an empty raster.
func Mean[T raster.Sample](src *raster.Raster[T]) float64 {
	if len(src.Pix) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range src.Pix {
		sum += float64(v)
	}
	return sum / float64(len(src.Pix))
}

// Max returns the largest pixel value, or 0 for an empty raster.
func Max[T raster.Sample](src *raster.Raster[T]) float64 {
	if len(src.Pix) == 0 {
		return 0
	}
	max := float64(src.Pix[0])
	for _, v := range src.Pix[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}
	return max
}

// MaxAbs returns the largest absolute pixel value, or 0 for an empty
// raster.
func MaxAbs[T raster.Sample](src *raster.Raster[T]) float64 {
	max := 0.0
	for _, v := range src.Pix {
		if a := math.Abs(float64(v)); a > max {
			max = a
		}
	}
	return max
}

// Sum returns the sum of all pixel values.
func Sum[T raster.Sample](src *raster.Raster[T]) float64 {
	sum := 0.0
	for _, v := range src.Pix {
		sum += float64(v)
	}
	return sum
}

// Histogram counts the values of an 8-bit raster into 256 bins.
func Histogram(src *raster.Raster[uint8]) [256]int {
	var hist [256]int
	for _, v := range src.Pix {
		hist[v]++
	}
	return hist
}
