package pixelops

import (
	"testing"

	"grayproc/pkg/raster"
)

func TestMatRoundTripU8(t *testing.T) {
	src := raster.NewU8(7, 5)
	for i := range src.Pix {
		src.Pix[i] = uint8((i * 37) % 256)
	}

	m, err := matFrom(src)
	if err != nil {
		t.Fatalf("matFrom: %v", err)
	}
	defer m.Close()

	back, err := rasterLike(m, src)
	if err != nil {
		t.Fatalf("rasterLike: %v", err)
	}

	if back.Width != src.Width || back.Height != src.Height {
		t.Fatalf("round trip changed shape to %dx%d", back.Width, back.Height)
	}
	for i := range src.Pix {
		if back.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d changed: %d != %d", i, back.Pix[i], src.Pix[i])
		}
	}
	if back.Domain() != raster.DomainU8 {
		t.Errorf("round trip changed domain to %v", back.Domain())
	}
}

func TestMatRoundTripF32(t *testing.T) {
	src := raster.NewF32(4, 6)
	for i := range src.Pix {
		src.Pix[i] = float32(i)*0.5 - 3
	}

	m, err := matFrom(src)
	if err != nil {
		t.Fatalf("matFrom: %v", err)
	}
	defer m.Close()

	back, err := rasterLike(m, src)
	if err != nil {
		t.Fatalf("rasterLike: %v", err)
	}

	for i := range src.Pix {
		if back.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d changed: %v != %v", i, back.Pix[i], src.Pix[i])
		}
	}
	if back.Domain() != raster.DomainF32 {
		t.Errorf("round trip changed domain to %v", back.Domain())
	}
}
