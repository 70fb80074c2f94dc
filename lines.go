package grayproc

import (
	"fmt"
	"math"

	"grayproc/internal/pixelops"
	"grayproc/pkg/geometry"
)

// HoughPolarConfig parameterizes infinite-line detection.
type HoughPolarConfig struct {
	// CannyLow and CannyHigh are the hysteresis thresholds of the edge
	// detector feeding the transform.
	CannyLow  float32
	CannyHigh float32
	// RhoResolution is the accumulator distance step in pixels.
	RhoResolution float32
	// ThetaResolution is the accumulator angle step in radians.
	ThetaResolution float32
	// MinVotes is the minimum accumulator count for a reported line.
	MinVotes int
	// MaxLines caps the number of returned lines, strongest first.
	// Zero keeps everything.
	MaxLines int
}

// DefaultHoughPolarConfig returns settings that work for clearly ruled
// content such as document edges and board traces.
func DefaultHoughPolarConfig() HoughPolarConfig {
	return HoughPolarConfig{
		CannyLow:        50,
		CannyHigh:       150,
		RhoResolution:   1,
		ThetaResolution: float32(math.Pi / 180),
		MinVotes:        50,
		MaxLines:        0,
	}
}

// WithCanny returns a copy of the config with the edge thresholds
// replaced.
func (c HoughPolarConfig) WithCanny(low, high float32) HoughPolarConfig {
	c.CannyLow = low
	c.CannyHigh = high
	return c
}

// WithResolution returns a copy of the config with the accumulator steps
// replaced.
func (c HoughPolarConfig) WithResolution(rho, theta float32) HoughPolarConfig {
	c.RhoResolution = rho
	c.ThetaResolution = theta
	return c
}

// WithMinVotes returns a copy of the config with the vote threshold
// replaced.
func (c HoughPolarConfig) WithMinVotes(votes int) HoughPolarConfig {
	c.MinVotes = votes
	return c
}

// WithMaxLines returns a copy of the config with the result cap replaced.
func (c HoughPolarConfig) WithMaxLines(n int) HoughPolarConfig {
	c.MaxLines = n
	return c
}

// HoughSegmentsConfig parameterizes finite-segment detection.
type HoughSegmentsConfig struct {
	CannyLow        float32
	CannyHigh       float32
	RhoResolution   float32
	ThetaResolution float32
	MinVotes        int
	// MinLength discards segments shorter than this many pixels.
	MinLength float32
	// MaxGap joins collinear segments separated by at most this many
	// pixels.
	MaxGap float32
}

// DefaultHoughSegmentsConfig returns settings that favor long unbroken
// segments over fragments.
func DefaultHoughSegmentsConfig() HoughSegmentsConfig {
	return HoughSegmentsConfig{
		CannyLow:        50,
		CannyHigh:       150,
		RhoResolution:   1,
		ThetaResolution: float32(math.Pi / 180),
		MinVotes:        40,
		MinLength:       30,
		MaxGap:          5,
	}
}

// WithCanny returns a copy of the config with the edge thresholds
// replaced.
func (c HoughSegmentsConfig) WithCanny(low, high float32) HoughSegmentsConfig {
	c.CannyLow = low
	c.CannyHigh = high
	return c
}

// WithMinVotes returns a copy of the config with the vote threshold
// replaced.
func (c HoughSegmentsConfig) WithMinVotes(votes int) HoughSegmentsConfig {
	c.MinVotes = votes
	return c
}

// WithSegmentShape returns a copy of the config with the length and gap
// limits replaced.
func (c HoughSegmentsConfig) WithSegmentShape(minLength, maxGap float32) HoughSegmentsConfig {
	c.MinLength = minLength
	c.MaxGap = maxGap
	return c
}

// LinesHoughPolar detects infinite lines in rho/theta form. 8-bit images
// only.
func (g Gray) LinesHoughPolar(cfg HoughPolarConfig) ([]geometry.LinePolar, error) {
	img, err := g.requireU8("hough lines")
	if err != nil {
		return nil, err
	}
	lines, err := pixelops.HoughPolar(img, cfg.CannyLow, cfg.CannyHigh,
		cfg.RhoResolution, cfg.ThetaResolution, cfg.MinVotes, cfg.MaxLines)
	if err != nil {
		return nil, fmt.Errorf("hough lines: %w", err)
	}
	return lines, nil
}

// LinesHoughSegments detects finite line segments. 8-bit images only.
func (g Gray) LinesHoughSegments(cfg HoughSegmentsConfig) ([]geometry.LineSegment, error) {
	img, err := g.requireU8("hough segments")
	if err != nil {
		return nil, err
	}
	segments, err := pixelops.HoughSegments(img, cfg.CannyLow, cfg.CannyHigh,
		cfg.RhoResolution, cfg.ThetaResolution, cfg.MinVotes,
		cfg.MinLength, cfg.MaxGap)
	if err != nil {
		return nil, fmt.Errorf("hough segments: %w", err)
	}
	return segments, nil
}
