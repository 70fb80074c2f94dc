package pixelops

import (
	"grayproc/pkg/geometry"
	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// HoughPolar detects infinite lines: Canny edge detection followed by the
// standard Hough transform. maxLines limits the result, strongest first;
// zero keeps everything.
func HoughPolar(src *raster.Raster[uint8], cannyLow, cannyHigh, rhoRes, thetaRes float32, votes, maxLines int) ([]geometry.LinePolar, error) {
	edges, err := cannyEdges(src, cannyLow, cannyHigh)
	if err != nil {
		return nil, err
	}
	defer edges.Close()

	lines := gocv.NewMat()
	defer lines.Close()

	gocv.HoughLines(edges, &lines, rhoRes, thetaRes, votes)

	count := lines.Rows()
	if maxLines > 0 && count > maxLines {
		count = maxLines
	}
	out := make([]geometry.LinePolar, 0, count)
	for i := 0; i < count; i++ {
		v := lines.GetVecfAt(i, 0)
		out = append(out, geometry.LinePolar{
			Rho:   float64(v[0]),
			Theta: float64(v[1]),
		})
	}
	return out, nil
}

// HoughSegments detects finite line segments: Canny edge detection
// followed by the probabilistic Hough transform.
func HoughSegments(src *raster.Raster[uint8], cannyLow, cannyHigh, rhoRes, thetaRes float32, votes int, minLength, maxGap float32) ([]geometry.LineSegment, error) {
	edges, err := cannyEdges(src, cannyLow, cannyHigh)
	if err != nil {
		return nil, err
	}
	defer edges.Close()

	lines := gocv.NewMat()
	defer lines.Close()

	gocv.HoughLinesPWithParams(edges, &lines, rhoRes, thetaRes, votes, minLength, maxGap)

	out := make([]geometry.LineSegment, 0, lines.Rows())
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		out = append(out, geometry.LineSegment{
			A: geometry.NewPoint2D(float64(v[0]), float64(v[1])),
			B: geometry.NewPoint2D(float64(v[2]), float64(v[3])),
		})
	}
	return out, nil
}

// cannyEdges produces the edge map both Hough variants consume. The
// caller owns the returned Mat.
func cannyEdges(src *raster.Raster[uint8], low, high float32) (gocv.Mat, error) {
	m, err := matFrom(src)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer m.Close()

	edges := gocv.NewMat()
	gocv.Canny(m, &edges, low, high)
	return edges, nil
}
