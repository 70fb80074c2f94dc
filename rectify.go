package grayproc

import (
	"fmt"

	"grayproc/internal/warp"
	"grayproc/pkg/geometry"
)

// RemovePerspective projects the quadrilateral with corners c0..c3 onto a
// destWidth by destHeight rectangle, removing planar perspective. The
// corners mark where the destination's top-left, top-right, bottom-right
// and bottom-left land in the source, so they must be listed clockwise.
// Sampling is bilinear; destination pixels whose source point falls
// outside the image keep their zero value.
//
// Degenerate corner sets (repeated, collinear, self-intersecting) fail
// with an error matching ErrDegenerateConfiguration.
func (g Gray) RemovePerspective(destWidth, destHeight int, c0, c1, c2, c3 geometry.Point2D) (Gray, error) {
	corners := [4]geometry.Point2D{c0, c1, c2, c3}
	h, err := warp.RectifyQuad(corners, destWidth, destHeight)
	if err != nil {
		return Gray{}, fmt.Errorf("remove perspective: %w", err)
	}

	mapper := warp.HomographyMapper{H: h}
	opts := warp.DefaultOptions()

	switch {
	case g.u8 != nil:
		dst := g.u8.NewSize(destWidth, destHeight)
		warp.Warp(dst, g.u8, mapper, opts)
		return Gray{u8: dst}, nil
	case g.f32 != nil:
		dst := g.f32.NewSize(destWidth, destHeight)
		warp.Warp(dst, g.f32, mapper, opts)
		return Gray{f32: dst}, nil
	}
	return Gray{}, &UnsupportedSampleTypeError{Domain: g.Domain()}
}
