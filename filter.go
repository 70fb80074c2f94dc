package grayproc

import (
	"fmt"

	"grayproc/internal/pixelops"
)

// BlurMean smooths with a normalized box filter of size 2*radius+1.
func (g Gray) BlurMean(radius int) (Gray, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.BlurMean(g.u8, radius)
		if err != nil {
			return Gray{}, fmt.Errorf("blur mean: %w", err)
		}
		return Gray{u8: out}, nil
	case g.f32 != nil:
		out, err := pixelops.BlurMean(g.f32, radius)
		if err != nil {
			return Gray{}, fmt.Errorf("blur mean: %w", err)
		}
		return Gray{f32: out}, nil
	}
	return Gray{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// BlurMedian smooths with a median filter of size 2*radius+1. Floating
// point images support radius 1 and 2 only.
func (g Gray) BlurMedian(radius int) (Gray, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.BlurMedian(g.u8, radius)
		if err != nil {
			return Gray{}, fmt.Errorf("blur median: %w", err)
		}
		return Gray{u8: out}, nil
	case g.f32 != nil:
		out, err := pixelops.BlurMedian(g.f32, radius)
		if err != nil {
			return Gray{}, fmt.Errorf("blur median: %w", err)
		}
		return Gray{f32: out}, nil
	}
	return Gray{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// BlurGaussian smooths with a Gaussian kernel. A negative radius derives
// the kernel size from sigma; a non-positive sigma derives it from the
// radius.
func (g Gray) BlurGaussian(sigma float64, radius int) (Gray, error) {
	switch {
	case g.u8 != nil:
		out, err := pixelops.BlurGaussian(g.u8, sigma, radius)
		if err != nil {
			return Gray{}, fmt.Errorf("blur gaussian: %w", err)
		}
		return Gray{u8: out}, nil
	case g.f32 != nil:
		out, err := pixelops.BlurGaussian(g.f32, sigma, radius)
		if err != nil {
			return Gray{}, fmt.Errorf("blur gaussian: %w", err)
		}
		return Gray{f32: out}, nil
	}
	return Gray{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}

// HistogramEqualize stretches global contrast by histogram equalization.
// 8-bit images only.
func (g Gray) HistogramEqualize() (Gray, error) {
	img, err := g.requireU8("histogram equalize")
	if err != nil {
		return Gray{}, err
	}
	out, err := pixelops.Equalize(img)
	if err != nil {
		return Gray{}, fmt.Errorf("histogram equalize: %w", err)
	}
	return Gray{u8: out}, nil
}

// HistogramEqualizeLocal applies contrast-limited local equalization over
// tiles of size 2*radius+1. 8-bit images only.
func (g Gray) HistogramEqualizeLocal(radius int) (Gray, error) {
	img, err := g.requireU8("local histogram equalize")
	if err != nil {
		return Gray{}, err
	}
	out, err := pixelops.EqualizeLocal(img, radius)
	if err != nil {
		return Gray{}, fmt.Errorf("local histogram equalize: %w", err)
	}
	return Gray{u8: out}, nil
}

// Sharpen4 sharpens with the 4-connected Laplacian kernel. 8-bit images
// only.
func (g Gray) Sharpen4() (Gray, error) {
	img, err := g.requireU8("sharpen4")
	if err != nil {
		return Gray{}, err
	}
	out, err := pixelops.Sharpen4(img)
	if err != nil {
		return Gray{}, fmt.Errorf("sharpen4: %w", err)
	}
	return Gray{u8: out}, nil
}

// Sharpen8 sharpens with the 8-connected Laplacian kernel. 8-bit images
// only.
func (g Gray) Sharpen8() (Gray, error) {
	img, err := g.requireU8("sharpen8")
	if err != nil {
		return Gray{}, err
	}
	out, err := pixelops.Sharpen8(img)
	if err != nil {
		return Gray{}, fmt.Errorf("sharpen8: %w", err)
	}
	return Gray{u8: out}, nil
}
