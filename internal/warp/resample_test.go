package warp

import (
	"testing"

	"grayproc/pkg/geometry"
	"grayproc/pkg/raster"
)

// rampU8 fills a raster so that every row reads 10, 20, 30, ...
func rampU8(width, height int) *raster.Raster[uint8] {
	img := raster.NewU8(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, uint8((x+1)*10))
		}
	}
	return img
}

func fillU8(img *raster.Raster[uint8], value uint8) {
	for i := range img.Pix {
		img.Pix[i] = value
	}
}

func TestWarpIdentity(t *testing.T) {
	src := raster.NewU8(16, 12)
	for i := range src.Pix {
		src.Pix[i] = uint8((i*31 + 7) % 256)
	}

	dst := src.NewSameShape()
	Warp(dst, src, AffineMapper{T: geometry.Identity()}, DefaultOptions())

	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("identity warp changed pixel %d: %d != %d", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestWarpIdentityF32(t *testing.T) {
	src := raster.NewF32(8, 8)
	for i := range src.Pix {
		src.Pix[i] = float32(i) * 0.25
	}

	dst := src.NewSameShape()
	Warp(dst, src, AffineMapper{T: geometry.Identity()}, DefaultOptions())

	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("identity warp changed pixel %d: %v != %v", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestWarpQuarterTurn(t *testing.T) {
	src := raster.NewU8(10, 10)
	src.Set(5, 5, 200)

	// Corner order picks the rotated frame: the left edge of the source
	// becomes the top of the output.
	corners := [4]geometry.Point2D{
		geometry.NewPoint2D(0, 9),
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(9, 0),
		geometry.NewPoint2D(9, 9),
	}
	h, err := RectifyQuad(corners, 10, 10)
	if err != nil {
		t.Fatalf("RectifyQuad: %v", err)
	}

	for _, interp := range []Interpolation{InterpBilinear, InterpNearest} {
		dst := src.NewSameShape()
		Warp(dst, src, HomographyMapper{H: h}, DefaultOptions().WithInterpolation(interp))

		if got := dst.At(4, 5); got != 200 {
			t.Errorf("%v: rotated pixel = %d, want 200", interp, got)
		}
		count := 0
		for _, v := range dst.Pix {
			if v == 200 {
				count++
			}
		}
		if count != 1 {
			t.Errorf("%v: found %d bright pixels, want 1", interp, count)
		}
	}
}

func TestWarpBorderPolicies(t *testing.T) {
	src := rampU8(5, 5)
	shift := AffineMapper{T: geometry.Translation(-2, 0)}

	tests := []struct {
		name   string
		border Border
		want   [2]uint8 // values at x = 0 and x = 1
	}{
		{"extend", BorderExtend, [2]uint8{10, 10}},
		{"wrap", BorderWrap, [2]uint8{40, 50}},
		{"reflect", BorderReflect, [2]uint8{20, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := src.NewSameShape()
			Warp(dst, src, shift, DefaultOptions().WithBorder(tt.border))

			for y := 0; y < dst.Height; y++ {
				if got := dst.At(0, y); got != tt.want[0] {
					t.Errorf("row %d col 0 = %d, want %d", y, got, tt.want[0])
				}
				if got := dst.At(1, y); got != tt.want[1] {
					t.Errorf("row %d col 1 = %d, want %d", y, got, tt.want[1])
				}
				// Interior pixels shift regardless of policy.
				if got := dst.At(3, y); got != 20 {
					t.Errorf("row %d col 3 = %d, want 20", y, got)
				}
			}
		})
	}
}

func TestWarpBorderSkipLeavesPixels(t *testing.T) {
	src := rampU8(5, 5)
	dst := src.NewSameShape()
	fillU8(dst, 77)

	Warp(dst, src, AffineMapper{T: geometry.Translation(-2, 0)}, DefaultOptions())

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.At(x, y); got != 77 {
				t.Errorf("skipped pixel (%d,%d) = %d, want 77", x, y, got)
			}
		}
		for x := 2; x < dst.Width; x++ {
			want := uint8((x - 1) * 10)
			if got := dst.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestWarpBilinearBlends(t *testing.T) {
	src := rampU8(4, 2)
	dst := src.NewSameShape()
	Warp(dst, src, AffineMapper{T: geometry.Translation(-0.5, 0)}, DefaultOptions())

	// dst x reads src x-0.5, the midpoint of two ramp values.
	for _, x := range []int{1, 2, 3} {
		want := uint8(x*10 + 5)
		if got := dst.At(x, 0); got != want {
			t.Errorf("pixel (%d,0) = %d, want %d", x, got, want)
		}
	}

	srcF := raster.NewF32(4, 1)
	srcF.Pix = []float32{0.25, 0.75, 1.25, 1.75}
	dstF := srcF.NewSameShape()
	Warp(dstF, srcF, AffineMapper{T: geometry.Translation(-0.5, 0)}, DefaultOptions())
	if got := dstF.At(1, 0); got != 0.5 {
		t.Errorf("float pixel (1,0) = %v, want 0.5", got)
	}
}

func TestWarpNearestPicksClosest(t *testing.T) {
	src := rampU8(4, 1)
	opts := DefaultOptions().WithInterpolation(InterpNearest)

	dst := src.NewSameShape()
	Warp(dst, src, AffineMapper{T: geometry.Translation(-0.4, 0)}, opts)
	if got := dst.At(1, 0); got != 20 {
		t.Errorf("source 0.6 sampled %d, want 20", got)
	}

	dst = src.NewSameShape()
	Warp(dst, src, AffineMapper{T: geometry.Translation(-0.6, 0)}, opts)
	if got := dst.At(1, 0); got != 10 {
		t.Errorf("source 0.4 sampled %d, want 10", got)
	}
}

func TestWarpUndefinedPointsLeftUntouched(t *testing.T) {
	// w = 1 - x vanishes at x = 1, so that column has no source location.
	h := geometry.Homography{
		1, 0, 0,
		0, 1, 0,
		-1, 0, 1,
	}

	src := rampU8(3, 1)
	dst := src.NewSameShape()
	fillU8(dst, 99)

	Warp(dst, src, HomographyMapper{H: h}, DefaultOptions().WithBorder(BorderExtend))

	if got := dst.At(0, 0); got != 10 {
		t.Errorf("pixel (0,0) = %d, want 10", got)
	}
	if got := dst.At(1, 0); got != 99 {
		t.Errorf("undefined pixel (1,0) = %d, want untouched 99", got)
	}
	// x = 2 maps to -2, outside, and extends to the first pixel.
	if got := dst.At(2, 0); got != 10 {
		t.Errorf("pixel (2,0) = %d, want 10", got)
	}
}

func TestWarpDeterministic(t *testing.T) {
	src := raster.NewU8(64, 48)
	for i := range src.Pix {
		src.Pix[i] = uint8((i*131 + 17) % 256)
	}

	corners := [4]geometry.Point2D{
		geometry.NewPoint2D(5, 3),
		geometry.NewPoint2D(60, 8),
		geometry.NewPoint2D(55, 44),
		geometry.NewPoint2D(2, 40),
	}
	h, err := RectifyQuad(corners, 64, 48)
	if err != nil {
		t.Fatalf("RectifyQuad: %v", err)
	}

	first := src.NewSameShape()
	second := src.NewSameShape()
	Warp(first, src, HomographyMapper{H: h}, DefaultOptions())
	Warp(second, src, HomographyMapper{H: h}, DefaultOptions())

	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("parallel warp not deterministic at pixel %d: %d != %d", i, first.Pix[i], second.Pix[i])
		}
	}
}
