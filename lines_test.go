package grayproc

import (
	"math"
	"testing"

	"grayproc/pkg/raster"
)

func TestLinesHoughPolarThroughFacade(t *testing.T) {
	src := raster.NewU8(40, 40)
	for y := 0; y < 40; y++ {
		for x := 9; x <= 11; x++ {
			src.Set(x, y, 255)
		}
	}

	cfg := DefaultHoughPolarConfig().WithMinVotes(20)
	lines, err := FromU8(src).LinesHoughPolar(cfg)
	if err != nil {
		t.Fatalf("LinesHoughPolar: %v", err)
	}

	found := false
	for _, ln := range lines {
		if math.Abs(ln.Theta) < 0.2 && ln.Rho >= 6 && ln.Rho <= 14 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no vertical line near x=10 among %v", lines)
	}
}

func TestLinesHoughSegmentsThroughFacade(t *testing.T) {
	src := raster.NewU8(40, 40)
	for y := 0; y < 40; y++ {
		for x := 9; x <= 11; x++ {
			src.Set(x, y, 255)
		}
	}

	cfg := DefaultHoughSegmentsConfig().WithMinVotes(15).WithSegmentShape(10, 3)
	segments, err := FromU8(src).LinesHoughSegments(cfg)
	if err != nil {
		t.Fatalf("LinesHoughSegments: %v", err)
	}

	found := false
	for _, seg := range segments {
		if math.Abs(seg.A.X-seg.B.X) <= 2 && math.Abs(seg.A.Y-seg.B.Y) >= 10 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no near-vertical segment among %v", segments)
	}
}

func TestHoughConfigModifiersCopy(t *testing.T) {
	base := DefaultHoughPolarConfig()
	mod := base.WithMinVotes(5).WithCanny(10, 20).WithMaxLines(3).WithResolution(2, 0.1)

	if base.MinVotes != 50 || base.CannyLow != 50 || base.MaxLines != 0 {
		t.Fatal("modifier mutated the original config")
	}
	if mod.MinVotes != 5 || mod.CannyLow != 10 || mod.CannyHigh != 20 ||
		mod.MaxLines != 3 || mod.RhoResolution != 2 {
		t.Fatalf("modifiers not applied: %+v", mod)
	}

	segBase := DefaultHoughSegmentsConfig()
	segMod := segBase.WithSegmentShape(12, 2).WithMinVotes(7).WithCanny(1, 2)
	if segBase.MinLength != 30 || segBase.MinVotes != 40 {
		t.Fatal("segment modifier mutated the original config")
	}
	if segMod.MinLength != 12 || segMod.MaxGap != 2 || segMod.MinVotes != 7 || segMod.CannyLow != 1 {
		t.Fatalf("segment modifiers not applied: %+v", segMod)
	}
}
