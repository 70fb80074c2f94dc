package geometry

import (
	"math"
)

// homogeneousEpsilon is the smallest |w| accepted when projecting a
// homogeneous coordinate back onto the plane.
const homogeneousEpsilon = 1e-10

// Homography represents a 3x3 planar projective transform stored in
// row-major order:
//
//	[h0 h1 h2]
//	[h3 h4 h5]
//	[h6 h7 h8]
//
// It maps a point (u, v) to (x/w, y/w) where
// [x y w] = H * [u v 1], and is defined only up to scale.
type Homography [9]float64

// IdentityHomography returns the identity projective transform.
func IdentityHomography() Homography {
	return Homography{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the matrix entry at the given row and column.
func (h Homography) At(row, col int) float64 {
	return h[row*3+col]
}

// Apply maps a point through the homography. The second return value is
// false when the mapped point lies too close to the line at infinity,
// in which case the returned point is meaningless.
func (h Homography) Apply(p Point2D) (Point2D, bool) {
	x := h[0]*p.X + h[1]*p.Y + h[2]
	y := h[3]*p.X + h[4]*p.Y + h[5]
	w := h[6]*p.X + h[7]*p.Y + h[8]
	if math.Abs(w) < homogeneousEpsilon {
		return Point2D{}, false
	}
	return Point2D{X: x / w, Y: y / w}, true
}

// Mul returns the composition h * other, which applies other first.
func (h Homography) Mul(other Homography) Homography {
	var out Homography
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += h[row*3+k] * other[k*3+col]
			}
			out[row*3+col] = sum
		}
	}
	return out
}

// Det returns the determinant of the matrix.
func (h Homography) Det() float64 {
	return h[0]*(h[4]*h[8]-h[5]*h[7]) -
		h[1]*(h[3]*h[8]-h[5]*h[6]) +
		h[2]*(h[3]*h[7]-h[4]*h[6])
}

// Inverse returns the inverse transform, if it exists.
func (h Homography) Inverse() (Homography, bool) {
	det := h.Det()
	if math.Abs(det) < 1e-12 {
		return Homography{}, false
	}

	invDet := 1.0 / det
	return Homography{
		(h[4]*h[8] - h[5]*h[7]) * invDet,
		(h[2]*h[7] - h[1]*h[8]) * invDet,
		(h[1]*h[5] - h[2]*h[4]) * invDet,
		(h[5]*h[6] - h[3]*h[8]) * invDet,
		(h[0]*h[8] - h[2]*h[6]) * invDet,
		(h[2]*h[3] - h[0]*h[5]) * invDet,
		(h[3]*h[7] - h[4]*h[6]) * invDet,
		(h[1]*h[6] - h[0]*h[7]) * invDet,
		(h[0]*h[4] - h[1]*h[3]) * invDet,
	}, true
}

// Normalize rescales the matrix to a canonical form: h8 set to 1 when it
// is not vanishingly small, otherwise unit Frobenius norm. The transform
// itself is unchanged.
func (h Homography) Normalize() Homography {
	if math.Abs(h[8]) > homogeneousEpsilon {
		return h.scale(1.0 / h[8])
	}
	norm := 0.0
	for _, v := range h {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return h
	}
	return h.scale(1.0 / norm)
}

func (h Homography) scale(factor float64) Homography {
	var out Homography
	for i, v := range h {
		out[i] = v * factor
	}
	return out
}
