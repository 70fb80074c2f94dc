package pixelops

import (
	"fmt"
	"image"

	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// Gradients are always produced as float32 pairs regardless of the input
// domain. The family covers the classical small-kernel derivatives:
// sobel (native engine support), prewitt, three (centered difference),
// and two0 / two1 (forward and backward difference).

// GradientSobel computes x and y derivatives with the 3x3 Sobel operator.
func GradientSobel[T raster.Sample](src *raster.Raster[T]) (dx, dy *raster.Raster[float32], err error) {
	m, err := matFrom(src)
	if err != nil {
		return nil, nil, err
	}
	defer m.Close()

	dxMat := gocv.NewMat()
	defer dxMat.Close()
	dyMat := gocv.NewMat()
	defer dyMat.Close()

	gocv.Sobel(m, &dxMat, gocv.MatTypeCV32F, 1, 0, 3, 1, 0, gocv.BorderReplicate)
	gocv.Sobel(m, &dyMat, gocv.MatTypeCV32F, 0, 1, 3, 1, 0, gocv.BorderReplicate)

	if dx, err = f32From(dxMat); err != nil {
		return nil, nil, err
	}
	if dy, err = f32From(dyMat); err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// GradientPrewitt computes x and y derivatives with the 3x3 Prewitt
// operator.
func GradientPrewitt[T raster.Sample](src *raster.Raster[T]) (dx, dy *raster.Raster[float32], err error) {
	center := image.Point{-1, -1}
	dx, err = derivative(src, 3, 3, []float32{
		-1, 0, 1,
		-1, 0, 1,
		-1, 0, 1,
	}, center)
	if err != nil {
		return nil, nil, err
	}
	dy, err = derivative(src, 3, 3, []float32{
		-1, -1, -1,
		0, 0, 0,
		1, 1, 1,
	}, center)
	if err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// GradientThree computes centered differences: f(x+1) - f(x-1) per axis.
func GradientThree[T raster.Sample](src *raster.Raster[T]) (dx, dy *raster.Raster[float32], err error) {
	center := image.Point{-1, -1}
	dx, err = derivative(src, 1, 3, []float32{-1, 0, 1}, center)
	if err != nil {
		return nil, nil, err
	}
	dy, err = derivative(src, 3, 1, []float32{-1, 0, 1}, center)
	if err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// GradientTwo0 computes forward differences: f(x+1) - f(x) per axis.
func GradientTwo0[T raster.Sample](src *raster.Raster[T]) (dx, dy *raster.Raster[float32], err error) {
	dx, err = derivative(src, 1, 2, []float32{-1, 1}, image.Point{0, 0})
	if err != nil {
		return nil, nil, err
	}
	dy, err = derivative(src, 2, 1, []float32{-1, 1}, image.Point{0, 0})
	if err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// GradientTwo1 computes backward differences: f(x) - f(x-1) per axis.
func GradientTwo1[T raster.Sample](src *raster.Raster[T]) (dx, dy *raster.Raster[float32], err error) {
	dx, err = derivative(src, 1, 2, []float32{-1, 1}, image.Point{1, 0})
	if err != nil {
		return nil, nil, err
	}
	dy, err = derivative(src, 2, 1, []float32{-1, 1}, image.Point{0, 1})
	if err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// Magnitude computes sqrt(dx*dx + dy*dy) per pixel. Both inputs must have
// the same dimensions.
func Magnitude(dx, dy *raster.Raster[float32]) (*raster.Raster[float32], error) {
	if dx.Width != dy.Width || dx.Height != dy.Height {
		return nil, fmt.Errorf("gradient size mismatch: %dx%d vs %dx%d",
			dx.Width, dx.Height, dy.Width, dy.Height)
	}

	mx, err := matFrom(dx)
	if err != nil {
		return nil, err
	}
	defer mx.Close()
	my, err := matFrom(dy)
	if err != nil {
		return nil, err
	}
	defer my.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Magnitude(mx, my, &dst)

	return f32From(dst)
}

// derivative convolves src with a small kernel, producing a float32
// raster. The anchor selects which kernel cell aligns with the output
// pixel; {-1, -1} means the center.
func derivative[T raster.Sample](src *raster.Raster[T], rows, cols int, values []float32, anchor image.Point) (*raster.Raster[float32], error) {
	m, err := matFrom(src)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	kernel := kernelMat(rows, cols, values)
	defer kernel.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Filter2D(m, &dst, gocv.MatTypeCV32F, kernel, anchor, 0, gocv.BorderReplicate)

	return f32From(dst)
}
