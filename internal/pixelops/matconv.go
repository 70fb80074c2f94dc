// Package pixelops implements the pixel-level operations the facade
// delegates: blurs, enhancement, thresholding, gradients, line detection,
// morphology, and statistics. OpenCV does the heavy lifting through gocv;
// the selectors it lacks are computed from histograms and integral images.
package pixelops

import (
	"fmt"

	"grayproc/pkg/raster"

	"gocv.io/x/gocv"
)

// matFrom copies a raster into a freshly allocated single-channel Mat of
// the matching depth. The caller owns the returned Mat.
func matFrom[T raster.Sample](src *raster.Raster[T]) (gocv.Mat, error) {
	switch src.Domain() {
	case raster.DomainU8:
		m := gocv.NewMatWithSize(src.Height, src.Width, gocv.MatTypeCV8UC1)
		view, err := m.DataPtrUint8()
		if err != nil {
			m.Close()
			return gocv.Mat{}, fmt.Errorf("mat data access: %w", err)
		}
		for i, v := range src.Pix {
			view[i] = uint8(v)
		}
		return m, nil
	case raster.DomainF32:
		m := gocv.NewMatWithSize(src.Height, src.Width, gocv.MatTypeCV32F)
		view, err := m.DataPtrFloat32()
		if err != nil {
			m.Close()
			return gocv.Mat{}, fmt.Errorf("mat data access: %w", err)
		}
		for i, v := range src.Pix {
			view[i] = float32(v)
		}
		return m, nil
	default:
		return gocv.Mat{}, fmt.Errorf("unsupported sample domain %v", src.Domain())
	}
}

// rasterLike copies a Mat back into a new raster with the same domain as
// the reference raster. The Mat depth must match that domain.
func rasterLike[T raster.Sample](m gocv.Mat, like *raster.Raster[T]) (*raster.Raster[T], error) {
	out := like.NewSize(m.Cols(), m.Rows())
	switch like.Domain() {
	case raster.DomainU8:
		view, err := m.DataPtrUint8()
		if err != nil {
			return nil, fmt.Errorf("mat data access: %w", err)
		}
		for i, v := range view {
			out.Pix[i] = T(v)
		}
	case raster.DomainF32:
		view, err := m.DataPtrFloat32()
		if err != nil {
			return nil, fmt.Errorf("mat data access: %w", err)
		}
		for i, v := range view {
			out.Pix[i] = T(v)
		}
	default:
		return nil, fmt.Errorf("unsupported sample domain %v", like.Domain())
	}
	return out, nil
}

// f32From copies a CV32F Mat into a float32 raster. Used for gradient
// outputs, which are always floating point regardless of the input domain.
func f32From(m gocv.Mat) (*raster.Raster[float32], error) {
	view, err := m.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("mat data access: %w", err)
	}
	out := raster.NewF32(m.Cols(), m.Rows())
	copy(out.Pix, view)
	return out, nil
}

// binaryFrom copies a thresholded Mat into a 0/255 uint8 raster. The Mat
// keeps the depth of the thresholded input, so both depths are accepted.
func binaryFrom(m gocv.Mat) (*raster.Raster[uint8], error) {
	out := raster.NewU8(m.Cols(), m.Rows())
	switch m.Type() {
	case gocv.MatTypeCV8UC1:
		view, err := m.DataPtrUint8()
		if err != nil {
			return nil, fmt.Errorf("mat data access: %w", err)
		}
		copy(out.Pix, view)
	case gocv.MatTypeCV32F:
		view, err := m.DataPtrFloat32()
		if err != nil {
			return nil, fmt.Errorf("mat data access: %w", err)
		}
		for i, v := range view {
			if v != 0 {
				out.Pix[i] = 255
			}
		}
	default:
		return nil, fmt.Errorf("unexpected mat type %v for a binary result", m.Type())
	}
	return out, nil
}
