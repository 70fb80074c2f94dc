// Package grayproc is a procedural facade for single-band image processing:
// blur, contrast enhancement, thresholding, first derivatives, line
// detection and planar perspective removal over 8-bit and floating-point
// rasters.
//
// A Gray value wraps exactly one raster from pkg/raster. Operations never
// mutate their receiver; each returns a freshly allocated result, so values
// can be chained and shared across goroutines freely. Thresholds produce
// Binary values, derivative operations produce Gradient values, and both
// convert back to Gray or to standard library images for display.
//
// Perspective removal is implemented in process: a direct linear transform
// estimates the homography from the four marked corners and the image is
// resampled by inverse mapping. The remaining pixel operations delegate to
// OpenCV through gocv.
package grayproc
