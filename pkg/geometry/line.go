package geometry

import "math"

// LinePolar is an infinite line in polar form: the points satisfying
// x*cos(theta) + y*sin(theta) = rho.
type LinePolar struct {
	Rho   float64
	Theta float64
}

// LineSegment is a finite segment between two endpoints.
type LineSegment struct {
	A Point2D
	B Point2D
}

// Length returns the segment length.
func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

// Segment returns a drawable chord of the line: the segment of the given
// half-length centered on the line's closest point to the origin.
func (l LinePolar) Segment(halfLength float64) LineSegment {
	cos := math.Cos(l.Theta)
	sin := math.Sin(l.Theta)
	base := NewPoint2D(l.Rho*cos, l.Rho*sin)
	dir := NewPoint2D(-sin, cos)
	return LineSegment{
		A: base.Add(dir.Scale(-halfLength)),
		B: base.Add(dir.Scale(halfLength)),
	}
}
