package pixelops

import (
	"testing"

	"grayproc/pkg/raster"
)

func uniformU8(width, height int, value uint8) *raster.Raster[uint8] {
	img := raster.NewU8(width, height)
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

func TestBlurPreservesUniform(t *testing.T) {
	src := uniformU8(16, 16, 100)

	tests := []struct {
		name string
		run  func() (*raster.Raster[uint8], error)
	}{
		{"mean", func() (*raster.Raster[uint8], error) { return BlurMean(src, 2) }},
		{"median", func() (*raster.Raster[uint8], error) { return BlurMedian(src, 2) }},
		{"gaussian sigma", func() (*raster.Raster[uint8], error) { return BlurGaussian(src, 1.5, -1) }},
		{"gaussian radius", func() (*raster.Raster[uint8], error) { return BlurGaussian(src, 0, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.run()
			if err != nil {
				t.Fatalf("blur: %v", err)
			}
			if out.Width != src.Width || out.Height != src.Height {
				t.Fatalf("blur changed shape to %dx%d", out.Width, out.Height)
			}
			for i, v := range out.Pix {
				if v != 100 {
					t.Fatalf("pixel %d = %d, want 100", i, v)
				}
			}
		})
	}
}

func TestBlurMeanAverages(t *testing.T) {
	// A lone bright pixel spreads into its 3x3 neighborhood.
	src := uniformU8(9, 9, 0)
	src.Set(4, 4, 90)

	out, err := BlurMean(src, 1)
	if err != nil {
		t.Fatalf("BlurMean: %v", err)
	}

	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			if got := out.At(x, y); got != 10 {
				t.Errorf("pixel (%d,%d) = %d, want 10", x, y, got)
			}
		}
	}
	if got := out.At(0, 0); got != 0 {
		t.Errorf("far pixel = %d, want 0", got)
	}
}

func TestBlurMedianRejectsWideFloatWindow(t *testing.T) {
	src := raster.NewF32(8, 8)
	if _, err := BlurMedian(src, 3); err == nil {
		t.Error("BlurMedian accepted radius 3 on a float raster")
	}
	if _, err := BlurMedian(src, 2); err != nil {
		t.Errorf("BlurMedian rejected radius 2 on a float raster: %v", err)
	}
}

func TestBlurRejectsBadArguments(t *testing.T) {
	src := uniformU8(8, 8, 10)
	if _, err := BlurMean(src, 0); err == nil {
		t.Error("BlurMean accepted radius 0")
	}
	if _, err := BlurGaussian(src, 0, 0); err == nil {
		t.Error("BlurGaussian accepted neither sigma nor radius")
	}
}
