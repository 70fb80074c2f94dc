package grayproc

import (
	"fmt"

	"grayproc/internal/warp"
	"grayproc/pkg/raster"
)

// ErrDegenerateConfiguration reports corner or correspondence geometry from
// which no invertible plane transform can be recovered: repeated or
// collinear points, zero-area or self-intersecting quadrilaterals.
var ErrDegenerateConfiguration = warp.ErrDegenerate

// InvalidImageTypeError reports an operation invoked on a sample domain it
// does not support.
type InvalidImageTypeError struct {
	Op     string
	Domain raster.Domain
}

func (e *InvalidImageTypeError) Error() string {
	return fmt.Sprintf("%s: not supported for %s images", e.Op, e.Domain)
}

// UnsupportedSampleTypeError reports a wrapper value that does not hold a
// raster of a known sample domain, typically a zero value.
type UnsupportedSampleTypeError struct {
	Domain raster.Domain
}

func (e *UnsupportedSampleTypeError) Error() string {
	return fmt.Sprintf("unsupported sample domain %s", e.Domain)
}
