package pixelops

import (
	"testing"

	"grayproc/pkg/raster"
)

func countOn(img *raster.Raster[uint8]) int {
	n := 0
	for _, v := range img.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestErodeShrinksBlock(t *testing.T) {
	src := raster.NewU8(9, 9)
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			src.Set(x, y, 255)
		}
	}

	out, err := Erode(src, 1)
	if err != nil {
		t.Fatalf("Erode: %v", err)
	}
	if got := countOn(out); got != 1 {
		t.Fatalf("on pixels = %d, want 1", got)
	}
	if out.At(4, 4) != 255 {
		t.Fatalf("center = %d, want 255", out.At(4, 4))
	}
}

func TestDilateGrowsPixel(t *testing.T) {
	src := raster.NewU8(9, 9)
	src.Set(4, 4, 255)

	out, err := Dilate(src, 1)
	if err != nil {
		t.Fatalf("Dilate: %v", err)
	}
	if got := countOn(out); got != 9 {
		t.Fatalf("on pixels = %d, want 9", got)
	}
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			if out.At(x, y) != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 255", x, y, out.At(x, y))
			}
		}
	}
}

func TestErodeDilateRoundTrip(t *testing.T) {
	src := raster.NewU8(12, 12)
	for y := 2; y <= 9; y++ {
		for x := 2; x <= 9; x++ {
			src.Set(x, y, 255)
		}
	}

	eroded, err := Erode(src, 1)
	if err != nil {
		t.Fatalf("Erode: %v", err)
	}
	opened, err := Dilate(eroded, 1)
	if err != nil {
		t.Fatalf("Dilate: %v", err)
	}
	// Opening an axis aligned solid square restores it exactly.
	for i := range src.Pix {
		if opened.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d = %d, want %d", i, opened.Pix[i], src.Pix[i])
		}
	}
}

func TestMorphologyRejectsBadRadius(t *testing.T) {
	src := raster.NewU8(4, 4)
	if _, err := Erode(src, 0); err == nil {
		t.Fatal("Erode accepted radius 0")
	}
	if _, err := Dilate(src, -1); err == nil {
		t.Fatal("Dilate accepted negative radius")
	}
}
