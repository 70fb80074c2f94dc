// Package warp implements planar perspective removal: homography
// estimation from point correspondences and inverse-mapped resampling
// of single-channel rasters.
package warp

import (
	"errors"
	"fmt"
	"math"

	"grayproc/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerate is returned when a point configuration does not determine
// a unique homography, for example when three of the four points are
// collinear or the quadrilateral has zero area.
var ErrDegenerate = errors.New("degenerate point configuration")

const (
	// rankRatioLimit is the smallest acceptable ratio between the largest
	// and smallest singular values of the design matrix. Below it the null
	// space has more than one dimension and the solution is not unique.
	rankRatioLimit = 1e-9

	// detLimit rejects estimated transforms that collapse the plane onto
	// a line. Checked after normalization so the scale is meaningful.
	detLimit = 1e-12
)

// EstimateHomography computes the homography H satisfying dst[i] = H(src[i])
// from exactly four point correspondences using the direct linear transform.
// The result is normalized so its h8 entry is 1 where possible. Returns
// ErrDegenerate when the points do not determine a unique transform.
func EstimateHomography(src, dst []geometry.Point2D) (geometry.Homography, error) {
	if len(src) != len(dst) {
		return geometry.Homography{}, fmt.Errorf("%w: point count mismatch: %d vs %d", ErrDegenerate, len(src), len(dst))
	}
	if len(src) != 4 {
		return geometry.Homography{}, fmt.Errorf("%w: need exactly 4 point pairs, got %d", ErrDegenerate, len(src))
	}

	// Condition both point sets before solving. The design matrix mixes
	// coordinates with their products, and at pixel scale the resulting
	// singular value spread would drown the rank test.
	normSrc, tSrc, err := normalizePoints(src)
	if err != nil {
		return geometry.Homography{}, err
	}
	normDst, tDst, err := normalizePoints(dst)
	if err != nil {
		return geometry.Homography{}, err
	}

	h, err := solveDLT(normSrc, normDst)
	if err != nil {
		return geometry.Homography{}, err
	}

	// Undo the conditioning: H = Tdst^-1 * Hn * Tsrc.
	tDstInv, ok := tDst.Inverse()
	if !ok {
		return geometry.Homography{}, fmt.Errorf("%w: conditioning transform is singular", ErrDegenerate)
	}
	result := tDstInv.Homography().Mul(h).Mul(tSrc.Homography()).Normalize()

	if math.Abs(result.Det()) < detLimit {
		return geometry.Homography{}, fmt.Errorf("%w: transform collapses the plane", ErrDegenerate)
	}

	return result, nil
}

// normalizePoints translates the centroid of the set to the origin and
// scales the mean distance to sqrt(2), the standard conditioning step for
// the direct linear transform. Returns the conditioned points and the
// similarity transform that produced them.
func normalizePoints(points []geometry.Point2D) ([]geometry.Point2D, geometry.AffineTransform, error) {
	var centroid geometry.Point2D
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	meanDist := 0.0
	for _, p := range points {
		meanDist += p.Distance(centroid)
	}
	meanDist /= float64(len(points))
	if meanDist < 1e-12 {
		return nil, geometry.AffineTransform{}, fmt.Errorf("%w: points are coincident", ErrDegenerate)
	}

	factor := math.Sqrt2 / meanDist
	transform := geometry.Scale(factor, factor).Compose(geometry.Translation(-centroid.X, -centroid.Y))

	normalized := make([]geometry.Point2D, len(points))
	for i, p := range points {
		normalized[i] = transform.Apply(p)
	}
	return normalized, transform, nil
}

// solveDLT stacks two equations per correspondence into an 8x9 design
// matrix and extracts its null vector by singular value decomposition.
func solveDLT(src, dst []geometry.Point2D) (geometry.Homography, error) {
	a := mat.NewDense(2*len(src), 9, nil)
	for i := range src {
		u, v := src[i].X, src[i].Y
		x, y := dst[i].X, dst[i].Y

		row := 2 * i
		a.Set(row, 0, -u)
		a.Set(row, 1, -v)
		a.Set(row, 2, -1)
		a.Set(row, 6, u*x)
		a.Set(row, 7, v*x)
		a.Set(row, 8, x)

		a.Set(row+1, 3, -u)
		a.Set(row+1, 4, -v)
		a.Set(row+1, 5, -1)
		a.Set(row+1, 6, u*y)
		a.Set(row+1, 7, v*y)
		a.Set(row+1, 8, y)
	}

	// The null vector lives in the ninth column of V, so the thin
	// decomposition is not enough.
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFullV) {
		return geometry.Homography{}, fmt.Errorf("svd factorization failed")
	}

	values := svd.Values(nil)
	smallest := values[len(values)-1]
	if values[0] < rankRatioLimit || smallest/values[0] < rankRatioLimit {
		return geometry.Homography{}, fmt.Errorf("%w: design matrix is rank deficient", ErrDegenerate)
	}

	var v mat.Dense
	svd.VTo(&v)

	// The solution is the right singular vector paired with the smallest
	// singular value, the last column of the full V matrix.
	var h geometry.Homography
	for i := 0; i < 9; i++ {
		h[i] = v.At(i, 8)
	}
	return h, nil
}
