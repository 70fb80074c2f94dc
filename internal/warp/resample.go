package warp

import (
	"math"
	"runtime"
	"sync"

	"grayproc/pkg/geometry"
	"grayproc/pkg/raster"
)

// Interpolation selects how fractional source coordinates are sampled.
type Interpolation int

const (
	// InterpNearest picks the closest source pixel.
	InterpNearest Interpolation = iota
	// InterpBilinear blends the four surrounding source pixels.
	InterpBilinear
)

// String returns a human-readable name for the interpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// Border selects how source coordinates outside the image are handled.
type Border int

const (
	// BorderSkip leaves the destination pixel untouched.
	BorderSkip Border = iota
	// BorderExtend clamps coordinates to the nearest edge pixel.
	BorderExtend
	// BorderWrap treats the image as periodic in both axes.
	BorderWrap
	// BorderReflect mirrors coordinates across the edge, repeating the
	// edge pixel.
	BorderReflect
)

// String returns a human-readable name for the border policy.
func (b Border) String() string {
	switch b {
	case BorderSkip:
		return "skip"
	case BorderExtend:
		return "extend"
	case BorderWrap:
		return "wrap"
	case BorderReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// Options bundles the resampling parameters.
type Options struct {
	Interpolation Interpolation
	Border        Border
}

// DefaultOptions returns bilinear interpolation with the skip border
// policy.
func DefaultOptions() Options {
	return Options{
		Interpolation: InterpBilinear,
		Border:        BorderSkip,
	}
}

// WithInterpolation returns a copy of the options with the interpolation
// replaced.
func (o Options) WithInterpolation(interp Interpolation) Options {
	o.Interpolation = interp
	return o
}

// WithBorder returns a copy of the options with the border policy
// replaced.
func (o Options) WithBorder(border Border) Options {
	o.Border = border
	return o
}

// Warp fills dst by inverse mapping: for each destination pixel the
// mapper supplies the source coordinate to sample. Destination pixels
// whose source coordinate has no finite value are left untouched
// regardless of border policy. Rows are processed in parallel stripes.
func Warp[T raster.Sample](dst, src *raster.Raster[T], mapper PointMapper, opts Options) {
	height := dst.Height

	numWorkers := runtime.NumCPU()
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		if startY >= height {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			warpRows(dst, src, mapper, opts, yStart, yEnd)
		}(startY, endY)
	}
	wg.Wait()
}

// warpRows resamples the destination rows in [yStart, yEnd).
func warpRows[T raster.Sample](dst, src *raster.Raster[T], mapper PointMapper, opts Options, yStart, yEnd int) {
	store := sampleStore[T](dst.Domain())
	maxX := float64(src.Width - 1)
	maxY := float64(src.Height - 1)

	for y := yStart; y < yEnd; y++ {
		rowOffset := y * dst.Width
		for x := 0; x < dst.Width; x++ {
			p, ok := mapper.Map(geometry.Point2D{X: float64(x), Y: float64(y)})
			if !ok {
				continue
			}

			inside := p.X >= 0 && p.X <= maxX && p.Y >= 0 && p.Y <= maxY
			if !inside && opts.Border == BorderSkip {
				continue
			}

			var value float64
			switch opts.Interpolation {
			case InterpNearest:
				value, ok = sampleNearest(src, p.X, p.Y, opts.Border)
			default:
				value, ok = sampleBilinear(src, p.X, p.Y, opts.Border)
			}
			if !ok {
				continue
			}

			dst.Pix[rowOffset+x] = store(value)
		}
	}
}

// sampleNearest reads the source pixel closest to (sx, sy).
func sampleNearest[T raster.Sample](src *raster.Raster[T], sx, sy float64, border Border) (float64, bool) {
	x := int(math.Floor(sx + 0.5))
	y := int(math.Floor(sy + 0.5))

	var ok bool
	if x, ok = borderIndex(x, src.Width, border); !ok {
		return 0, false
	}
	if y, ok = borderIndex(y, src.Height, border); !ok {
		return 0, false
	}
	return float64(src.Pix[y*src.Width+x]), true
}

// sampleBilinear blends the four source pixels surrounding (sx, sy).
func sampleBilinear[T raster.Sample](src *raster.Raster[T], sx, sy float64, border Border) (float64, bool) {
	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	// Zero-weight taps never read memory, so an exact hit on the last
	// row or column stays in bounds.
	x1, y1 := x0+1, y0+1
	if fx == 0 {
		x1 = x0
	}
	if fy == 0 {
		y1 = y0
	}

	var ok bool
	if x0, ok = borderIndex(x0, src.Width, border); !ok {
		return 0, false
	}
	if x1, ok = borderIndex(x1, src.Width, border); !ok {
		return 0, false
	}
	if y0, ok = borderIndex(y0, src.Height, border); !ok {
		return 0, false
	}
	if y1, ok = borderIndex(y1, src.Height, border); !ok {
		return 0, false
	}

	topLeft := float64(src.Pix[y0*src.Width+x0])
	topRight := float64(src.Pix[y0*src.Width+x1])
	bottomLeft := float64(src.Pix[y1*src.Width+x0])
	bottomRight := float64(src.Pix[y1*src.Width+x1])

	top := topLeft + (topRight-topLeft)*fx
	bottom := bottomLeft + (bottomRight-bottomLeft)*fx
	return top + (bottom-top)*fy, true
}

// borderIndex resolves a sample index against the border policy. The
// second return value is false when the index must not be sampled at all.
func borderIndex(i, n int, border Border) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}

	switch border {
	case BorderExtend:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case BorderWrap:
		return ((i % n) + n) % n, true
	case BorderReflect:
		m := ((i % (2 * n)) + 2*n) % (2 * n)
		if m >= n {
			m = 2*n - 1 - m
		}
		return m, true
	default:
		return 0, false
	}
}

// sampleStore returns the conversion used to write interpolated values
// back into a raster of the given domain. Unsigned 8-bit rasters round
// and clamp, floating-point rasters store the value as is.
func sampleStore[T raster.Sample](domain raster.Domain) func(float64) T {
	switch domain {
	case raster.DomainU8:
		return func(v float64) T {
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			return T(v + 0.5)
		}
	default:
		return func(v float64) T {
			return T(v)
		}
	}
}
