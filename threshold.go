package grayproc

import (
	"fmt"

	"grayproc/internal/pixelops"
	"grayproc/pkg/raster"
)

// The down flag of every threshold selects the comparison direction:
// down means pixel <= level is marked one, otherwise pixel > level is.

// Threshold applies a fixed global threshold.
func (g Gray) Threshold(level float64, down bool) (Binary, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.Threshold(g.u8, level, down)
		return binaryResult(out, err, "threshold")
	case g.f32 != nil:
		out, err := pixelops.Threshold(g.f32, level, down)
		return binaryResult(out, err, "threshold")
	}
	return Binary{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// OtsuLevel computes the global threshold that maximizes between-class
// variance. 8-bit images only.
func (g Gray) OtsuLevel() (float64, error) {
	img, err := g.requireU8("otsu level")
	if err != nil {
		return 0, err
	}
	return pixelops.OtsuLevel(img), nil
}

// ThresholdOtsu applies a global threshold selected by Otsu's method.
// 8-bit images only.
func (g Gray) ThresholdOtsu(down bool) (Binary, error) {
	level, err := g.OtsuLevel()
	if err != nil {
		return Binary{}, err
	}
	out, err := pixelops.Threshold(g.u8, level, down)
	return binaryResult(out, err, "otsu threshold")
}

// EntropyLevel computes the global threshold that maximizes the summed
// entropy of the two classes. 8-bit images only.
func (g Gray) EntropyLevel() (float64, error) {
	img, err := g.requireU8("entropy level")
	if err != nil {
		return 0, err
	}
	return pixelops.EntropyLevel(img), nil
}

// ThresholdEntropy applies a global threshold selected by entropy
// maximization. 8-bit images only.
func (g Gray) ThresholdEntropy(down bool) (Binary, error) {
	level, err := g.EntropyLevel()
	if err != nil {
		return Binary{}, err
	}
	out, err := pixelops.Threshold(g.u8, level, down)
	return binaryResult(out, err, "entropy threshold")
}

// ThresholdLocalMean thresholds each pixel against the mean of its
// (2*radius+1)-sized neighborhood minus bias.
func (g Gray) ThresholdLocalMean(radius int, bias float64, down bool) (Binary, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.LocalMean(g.u8, radius, bias, down)
		return binaryResult(out, err, "local mean threshold")
	case g.f32 != nil:
		out, err := pixelops.LocalMean(g.f32, radius, bias, down)
		return binaryResult(out, err, "local mean threshold")
	}
	return Binary{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// ThresholdLocalGaussian thresholds each pixel against the Gaussian
// weighted mean of its neighborhood minus bias.
func (g Gray) ThresholdLocalGaussian(radius int, bias float64, down bool) (Binary, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.LocalGaussian(g.u8, radius, bias, down)
		return binaryResult(out, err, "local gaussian threshold")
	case g.f32 != nil:
		out, err := pixelops.LocalGaussian(g.f32, radius, bias, down)
		return binaryResult(out, err, "local gaussian threshold")
	}
	return Binary{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// ThresholdSauvola thresholds with Sauvola's locally adaptive rule, which
// lowers the local mean where the neighborhood variance is small. The k
// parameter is typically around 0.3.
func (g Gray) ThresholdSauvola(radius int, k float64, down bool) (Binary, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.Sauvola(g.u8, radius, k, down)
		return binaryResult(out, err, "sauvola threshold")
	case g.f32 != nil:
		out, err := pixelops.Sauvola(g.f32, radius, k, down)
		return binaryResult(out, err, "sauvola threshold")
	}
	return Binary{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

func binaryResult(img *raster.Raster[uint8], err error, op string) (Binary, error) {
	if err != nil {
		return Binary{}, fmt.Errorf("%s: %w", op, err)
	}
	return Binary{img: img}, nil
}
