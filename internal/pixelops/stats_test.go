package pixelops

import (
	"math"
	"testing"

	"grayproc/pkg/raster"
)

func TestStatsU8(t *testing.T) {
	src := raster.NewU8(2, 2)
	src.Pix = []uint8{10, 20, 30, 40}

	if got := Mean(src); got != 25 {
		t.Fatalf("Mean = %v, want 25", got)
	}
	if got := Max(src); got != 40 {
		t.Fatalf("Max = %v, want 40", got)
	}
	if got := MaxAbs(src); got != 40 {
		t.Fatalf("MaxAbs = %v, want 40", got)
	}
	if got := Sum(src); got != 100 {
		t.Fatalf("Sum = %v, want 100", got)
	}
}

func TestStatsF32WithNegatives(t *testing.T) {
	src := raster.NewF32(2, 2)
	src.Pix = []float32{-5, 3, 2, -1}

	if got := Mean(src); math.Abs(got+0.25) > 1e-9 {
		t.Fatalf("Mean = %v, want -0.25", got)
	}
	if got := Max(src); got != 3 {
		t.Fatalf("Max = %v, want 3", got)
	}
	if got := MaxAbs(src); got != 5 {
		t.Fatalf("MaxAbs = %v, want 5", got)
	}
	if got := Sum(src); math.Abs(got+1) > 1e-9 {
		t.Fatalf("Sum = %v, want -1", got)
	}
}

func TestHistogramCounts(t *testing.T) {
	src := raster.NewU8(4, 2)
	src.Pix = []uint8{0, 0, 7, 7, 7, 255, 128, 128}

	hist := Histogram(src)
	want := map[int]int{0: 2, 7: 3, 128: 2, 255: 1}
	total := 0
	for bin, count := range hist {
		total += count
		if w, ok := want[bin]; ok {
			if count != w {
				t.Fatalf("bin %d = %d, want %d", bin, count, w)
			}
		} else if count != 0 {
			t.Fatalf("bin %d = %d, want 0", bin, count)
		}
	}
	if total != len(src.Pix) {
		t.Fatalf("histogram total = %d, want %d", total, len(src.Pix))
	}
}

func TestStatsEmptyRaster(t *testing.T) {
	src := &raster.Raster[uint8]{}

	if got := Mean(src); got != 0 {
		t.Fatalf("Mean of empty = %v, want 0", got)
	}
	if got := Max(src); got != 0 {
		t.Fatalf("Max of empty = %v, want 0", got)
	}
	if got := MaxAbs(src); got != 0 {
		t.Fatalf("MaxAbs of empty = %v, want 0", got)
	}
	if got := Sum(src); got != 0 {
		t.Fatalf("Sum of empty = %v, want 0", got)
	}
}
