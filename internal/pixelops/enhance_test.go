package pixelops

import (
	"testing"

	"grayproc/pkg/raster"
)

func TestEqualizeSpreadsBimodal(t *testing.T) {
	src := raster.NewU8(16, 16)
	for i := range src.Pix {
		if i%2 == 0 {
			src.Pix[i] = 100
		} else {
			src.Pix[i] = 200
		}
	}

	out, err := Equalize(src)
	if err != nil {
		t.Fatalf("Equalize: %v", err)
	}

	var low, high uint8 = 255, 0
	for _, v := range out.Pix {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	if high != 255 {
		t.Errorf("brightest class = %d, want 255", high)
	}
	if low < 120 || low > 135 {
		t.Errorf("darker class = %d, want near 127", low)
	}
}

func TestEqualizeLocalShape(t *testing.T) {
	src := raster.NewU8(32, 24)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			src.Set(x, y, uint8(x*4+y))
		}
	}

	out, err := EqualizeLocal(src, 4)
	if err != nil {
		t.Fatalf("EqualizeLocal: %v", err)
	}
	if out.Width != src.Width || out.Height != src.Height {
		t.Errorf("EqualizeLocal changed shape to %dx%d", out.Width, out.Height)
	}

	if _, err := EqualizeLocal(src, 0); err == nil {
		t.Error("EqualizeLocal accepted radius 0")
	}
}

func TestSharpenPreservesUniform(t *testing.T) {
	src := uniformU8(12, 12, 100)

	for _, tt := range []struct {
		name string
		run  func() (*raster.Raster[uint8], error)
	}{
		{"sharpen4", func() (*raster.Raster[uint8], error) { return Sharpen4(src) }},
		{"sharpen8", func() (*raster.Raster[uint8], error) { return Sharpen8(src) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.run()
			if err != nil {
				t.Fatalf("sharpen: %v", err)
			}
			for i, v := range out.Pix {
				if v != 100 {
					t.Fatalf("pixel %d = %d, want 100", i, v)
				}
			}
		})
	}
}

func TestSharpenPreservesLinearRamp(t *testing.T) {
	src := raster.NewU8(20, 8)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			src.Set(x, y, uint8(x*10))
		}
	}

	out, err := Sharpen4(src)
	if err != nil {
		t.Fatalf("Sharpen4: %v", err)
	}

	// A linear ramp is a fixed point of the sharpen kernel away from the
	// borders.
	for y := 1; y < src.Height-1; y++ {
		for x := 1; x < src.Width-1; x++ {
			if got, want := out.At(x, y), src.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}
