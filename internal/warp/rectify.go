package warp

import (
	"fmt"

	"grayproc/pkg/geometry"
)

// RectifyQuad computes the homography that carries the axis-aligned
// outWidth x outHeight output rectangle onto the given source
// quadrilateral. Corners must be listed in screen clockwise order
// starting at the corner that becomes the output's top-left; corner i
// becomes the image of output corner i. The result is the
// destination-to-source mapping used for inverse warping.
func RectifyQuad(corners [4]geometry.Point2D, outWidth, outHeight int) (geometry.Homography, error) {
	// A one-pixel axis puts both output corners on the same coordinate,
	// so no unique transform exists.
	if outWidth < 2 || outHeight < 2 {
		return geometry.Homography{}, fmt.Errorf("%w: output size %dx%d collapses the corner rectangle", ErrDegenerate, outWidth, outHeight)
	}

	quad := corners[:]
	if geometry.PolygonArea(quad) < 1e-9 {
		return geometry.Homography{}, fmt.Errorf("%w: quadrilateral has zero area", ErrDegenerate)
	}
	if !geometry.IsClockwise(quad) {
		return geometry.Homography{}, fmt.Errorf("corners must be listed in clockwise order")
	}
	if !geometry.IsConvex(quad) {
		return geometry.Homography{}, fmt.Errorf("%w: quadrilateral is not convex", ErrDegenerate)
	}

	w := float64(outWidth - 1)
	h := float64(outHeight - 1)
	rect := []geometry.Point2D{
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(w, 0),
		geometry.NewPoint2D(w, h),
		geometry.NewPoint2D(0, h),
	}

	return EstimateHomography(rect, quad)
}
