package warp

import (
	"grayproc/pkg/geometry"
)

// PointMapper maps a destination-plane point to the source-plane location
// that should be sampled for it. The second return value is false when the
// point has no finite image under the mapping.
type PointMapper interface {
	Map(p geometry.Point2D) (geometry.Point2D, bool)
}

// HomographyMapper adapts a projective transform to the PointMapper
// interface.
type HomographyMapper struct {
	H geometry.Homography
}

// Map applies the homography.
func (m HomographyMapper) Map(p geometry.Point2D) (geometry.Point2D, bool) {
	return m.H.Apply(p)
}

// AffineMapper adapts an affine transform to the PointMapper interface.
// Affine maps never send a finite point to infinity.
type AffineMapper struct {
	T geometry.AffineTransform
}

// Map applies the affine transform.
func (m AffineMapper) Map(p geometry.Point2D) (geometry.Point2D, bool) {
	return m.T.Apply(p), true
}
