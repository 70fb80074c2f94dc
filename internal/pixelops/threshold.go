package pixelops

import (
	"fmt"
	"math"

	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// Threshold binarizes against a fixed level. With down set, pixels at or
// below the level turn on; otherwise pixels above it do.
func Threshold[T raster.Sample](src *raster.Raster[T], level float64, down bool) (*raster.Raster[uint8], error) {
	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	typ := gocv.ThresholdBinary
	if down {
		typ = gocv.ThresholdBinaryInv
	}
	gocv.Threshold(m, &dst, float32(level), 255, typ)

	return binaryFrom(dst)
}

// LocalMean binarizes against the mean of the 2*radius+1 window around
// each pixel, shifted down by bias.
func LocalMean[T raster.Sample](src *raster.Raster[T], radius int, bias float64, down bool) (*raster.Raster[uint8], error) {
	if radius < 1 {
		return nil, fmt.Errorf("threshold radius must be at least 1, got %d", radius)
	}

	if src.Domain() == raster.DomainU8 {
		return adaptiveThreshold(src, radius, bias, down, gocv.AdaptiveThresholdMean)
	}

	local, err := BlurMean(src, radius)
	if err != nil {
		return nil, err
	}
	return compareToLocal(src, local, bias, down), nil
}

// LocalGaussian binarizes against a Gaussian-weighted mean of the
// 2*radius+1 window around each pixel, shifted down by bias.
func LocalGaussian[T raster.Sample](src *raster.Raster[T], radius int, bias float64, down bool) (*raster.Raster[uint8], error) {
	if radius < 1 {
		return nil, fmt.Errorf("threshold radius must be at least 1, got %d", radius)
	}

	if src.Domain() == raster.DomainU8 {
		return adaptiveThreshold(src, radius, bias, down, gocv.AdaptiveThresholdGaussian)
	}

	local, err := BlurGaussian(src, 0, radius)
	if err != nil {
		return nil, err
	}
	return compareToLocal(src, local, bias, down), nil
}

// adaptiveThreshold runs the engine's adaptive threshold on an 8-bit
// raster. The generic parameter only ever instantiates as uint8 here; the
// caller has already matched on the domain.
func adaptiveThreshold[T raster.Sample](src *raster.Raster[T], radius int, bias float64, down bool, method gocv.AdaptiveThresholdType) (*raster.Raster[uint8], error) {
	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	typ := gocv.ThresholdBinary
	if down {
		typ = gocv.ThresholdBinaryInv
	}
	gocv.AdaptiveThreshold(m, &dst, 255, method, typ, 2*radius+1, float32(bias))

	return binaryFrom(dst)
}

// compareToLocal binarizes src against a per-pixel local level image.
func compareToLocal[T raster.Sample](src, local *raster.Raster[T], bias float64, down bool) *raster.Raster[uint8] {
	out := raster.NewU8(src.Width, src.Height)
	for i := range src.Pix {
		level := float64(local.Pix[i]) - bias
		v := float64(src.Pix[i])

		on := v > level
		if down {
			on = v <= level
		}
		if on {
			out.Pix[i] = 255
		}
	}
	return out
}

// Sauvola binarizes with the adaptive level m*(1 + k*((s/128) - 1)),
// where m and s are the mean and standard deviation of the 2*radius+1
// window, computed from integral images. The formula assumes intensities
// in [0, 255].
func Sauvola[T raster.Sample](src *raster.Raster[T], radius int, k float64, down bool) (*raster.Raster[uint8], error) {
	if radius < 1 {
		return nil, fmt.Errorf("threshold radius must be at least 1, got %d", radius)
	}

	ii := newIntegralImage(src)
	out := raster.NewU8(src.Width, src.Height)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			mean, stddev := ii.windowStats(x, y, radius)
			level := mean * (1 + k*((stddev/128)-1))
			v := float64(src.Pix[y*src.Width+x])

			on := v > level
			if down {
				on = v <= level
			}
			if on {
				out.Pix[y*src.Width+x] = 255
			}
		}
	}
	return out, nil
}

// OtsuLevel picks the global threshold maximizing the between-class
// variance of the 8-bit histogram.
func OtsuLevel(src *raster.Raster[uint8]) float64 {
	hist := Histogram(src)
	total := len(src.Pix)

	sum := 0.0
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}

	var level int
	var sumB, best float64
	var wB int
	for i, c := range hist {
		wB += c
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}

		sumB += float64(i) * float64(c)
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)
		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			level = i
		}
	}
	return float64(level)
}

// EntropyLevel picks the global threshold maximizing the summed entropy
// of the two classes it separates.
func EntropyLevel(src *raster.Raster[uint8]) float64 {
	hist := Histogram(src)
	total := len(src.Pix)

	best := math.Inf(-1)
	var level int
	var w0 int
	for t := 0; t < len(hist); t++ {
		w0 += hist[t]
		w1 := total - w0
		if w0 == 0 || w1 == 0 {
			continue
		}

		var h0, h1 float64
		for i := 0; i <= t; i++ {
			if hist[i] > 0 {
				p := float64(hist[i]) / float64(w0)
				h0 -= p * math.Log(p)
			}
		}
		for i := t + 1; i < len(hist); i++ {
			if hist[i] > 0 {
				p := float64(hist[i]) / float64(w1)
				h1 -= p * math.Log(p)
			}
		}

		if h0+h1 > best {
			best = h0 + h1
			level = t
		}
	}
	return float64(level)
}
