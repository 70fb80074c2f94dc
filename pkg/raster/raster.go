// Package raster provides the single-channel image containers used by all
// grayproc operations.
package raster

// Domain identifies the sample domain of a raster.
type Domain int

// The zero Domain is not a valid tag.
const (
	// DomainU8 is 8-bit unsigned intensity, range [0, 255].
	DomainU8 Domain = iota + 1
	// DomainF32 is 32-bit floating-point intensity.
	DomainF32
)

func (d Domain) String() string {
	switch d {
	case DomainU8:
		return "U8"
	case DomainF32:
		return "F32"
	default:
		return "Unknown"
	}
}

// Sample constrains the pixel types a Raster can hold.
type Sample interface {
	~uint8 | ~float32
}

// Raster is a single-channel image. Samples are stored row-major in Pix,
// with the invariant len(Pix) == Width*Height. The sample domain is fixed
// at construction and never changes for the raster's lifetime.
type Raster[T Sample] struct {
	Width  int
	Height int
	Pix    []T

	domain Domain
}

// NewU8 allocates a zeroed 8-bit raster. Width and height must be positive.
func NewU8(width, height int) *Raster[uint8] {
	return &Raster[uint8]{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
		domain: DomainU8,
	}
}

// NewF32 allocates a zeroed float raster. Width and height must be positive.
func NewF32(width, height int) *Raster[float32] {
	return &Raster[float32]{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height),
		domain: DomainF32,
	}
}

// Domain returns the sample domain tag.
func (r *Raster[T]) Domain() Domain {
	return r.domain
}

// Offset returns the index of (x, y) in Pix.
func (r *Raster[T]) Offset(x, y int) int {
	return y*r.Width + x
}

// At returns the sample at (x, y). No bounds checking beyond the slice's own.
func (r *Raster[T]) At(x, y int) T {
	return r.Pix[y*r.Width+x]
}

// Set stores a sample at (x, y).
func (r *Raster[T]) Set(x, y int, v T) {
	r.Pix[y*r.Width+x] = v
}

// InBounds reports whether (x, y) is a valid pixel coordinate.
func (r *Raster[T]) InBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// NewSameShape allocates a zeroed raster with the same dimensions and domain.
func (r *Raster[T]) NewSameShape() *Raster[T] {
	return &Raster[T]{
		Width:  r.Width,
		Height: r.Height,
		Pix:    make([]T, r.Width*r.Height),
		domain: r.domain,
	}
}

// NewSize allocates a zeroed raster of the given dimensions in the same
// domain as the receiver.
func (r *Raster[T]) NewSize(width, height int) *Raster[T] {
	return &Raster[T]{
		Width:  width,
		Height: height,
		Pix:    make([]T, width*height),
		domain: r.domain,
	}
}

// Clone returns a deep copy.
func (r *Raster[T]) Clone() *Raster[T] {
	out := r.NewSameShape()
	copy(out.Pix, r.Pix)
	return out
}
