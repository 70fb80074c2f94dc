package pixelops

import (
	"math"

	"grayproc/pkg/raster"
)

// integralImage holds inclusive prefix sums of pixel values and squared
// pixel values, padded by one row and column so any window reduces to
// four lookups.
type integralImage struct {
	width  int
	height int
	sum    []float64
	sqSum  []float64
}

func newIntegralImage[T raster.Sample](src *raster.Raster[T]) *integralImage {
	w, h := src.Width, src.Height
	ii := &integralImage{
		width:  w,
		height: h,
		sum:    make([]float64, (w+1)*(h+1)),
		sqSum:  make([]float64, (w+1)*(h+1)),
	}

	stride := w + 1
	for y := 0; y < h; y++ {
		rowSum := 0.0
		rowSq := 0.0
		for x := 0; x < w; x++ {
			v := float64(src.Pix[y*w+x])
			rowSum += v
			rowSq += v * v

			idx := (y+1)*stride + x + 1
			ii.sum[idx] = ii.sum[idx-stride] + rowSum
			ii.sqSum[idx] = ii.sqSum[idx-stride] + rowSq
		}
	}
	return ii
}

// windowStats returns the mean and standard deviation of the square
// window of the given radius centered at (x, y), clipped to the image.
func (ii *integralImage) windowStats(x, y, radius int) (mean, stddev float64) {
	x0 := x - radius
	if x0 < 0 {
		x0 = 0
	}
	y0 := y - radius
	if y0 < 0 {
		y0 = 0
	}
	x1 := x + radius + 1
	if x1 > ii.width {
		x1 = ii.width
	}
	y1 := y + radius + 1
	if y1 > ii.height {
		y1 = ii.height
	}

	stride := ii.width + 1
	a := y0*stride + x0
	b := y0*stride + x1
	c := y1*stride + x0
	d := y1*stride + x1

	count := float64((x1 - x0) * (y1 - y0))
	total := ii.sum[d] + ii.sum[a] - ii.sum[b] - ii.sum[c]
	totalSq := ii.sqSum[d] + ii.sqSum[a] - ii.sqSum[b] - ii.sqSum[c]

	mean = total / count
	variance := totalSq/count - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}
