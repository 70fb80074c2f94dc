// Command rectifytest removes perspective from a marked quadrilateral and
// writes the rectified result as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"grayproc"
	"grayproc/internal/version"
	"grayproc/pkg/geometry"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to source image (TIFF, PNG, or JPEG)")
	outPath := flag.String("out", "rectified.png", "Path for the rectified PNG")
	width := flag.Int("width", 0, "Output width in pixels")
	height := flag.Int("height", 0, "Output height in pixels")
	corners := flag.String("corners", "", "Source corners clockwise from the output's top-left: x0,y0,x1,y1,x2,y2,x3,y3")
	flag.Parse()

	if *imagePath == "" || *corners == "" || *width <= 0 || *height <= 0 {
		fmt.Println("Usage: rectifytest -image <path> -corners x0,y0,...,x3,y3 -width <px> -height <px> [-out rectified.png]")
		os.Exit(1)
	}

	fmt.Printf("rectifytest %s (%s)\n", version.Version, version.GitCommit)

	quad, err := parseCorners(*corners)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad -corners: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	gray := grayproc.FromImage(img)
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, gray.Width(), gray.Height())
	for i, p := range quad {
		fmt.Printf("  corner %d: (%.1f, %.1f)\n", i, p.X, p.Y)
	}

	coverage := sourceCoverage(quad, gray.Width(), gray.Height())
	fmt.Printf("Quad area inside source: %.1f%%\n", coverage*100)

	start := time.Now()
	out, err := gray.RemovePerspective(*width, *height, quad[0], quad[1], quad[2], quad[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Rectification failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rectified to %dx%d in %v\n", out.Width(), out.Height(), time.Since(start))

	if err := writePNG(out, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func parseCorners(s string) ([4]geometry.Point2D, error) {
	var quad [4]geometry.Point2D
	parts := strings.Split(s, ",")
	if len(parts) != 8 {
		return quad, fmt.Errorf("need 8 comma separated values, got %d", len(parts))
	}
	for i := 0; i < 4; i++ {
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[2*i]), 64)
		if err != nil {
			return quad, fmt.Errorf("corner %d x: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[2*i+1]), 64)
		if err != nil {
			return quad, fmt.Errorf("corner %d y: %w", i, err)
		}
		quad[i] = geometry.NewPoint2D(x, y)
	}
	return quad, nil
}

// sourceCoverage returns the fraction of the marked quadrilateral that
// lies inside the source image bounds.
func sourceCoverage(quad [4]geometry.Point2D, width, height int) float64 {
	area := geometry.PolygonArea(quad[:])
	if area == 0 {
		return 0
	}
	bounds := []geometry.Point2D{
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(float64(width-1), 0),
		geometry.NewPoint2D(float64(width-1), float64(height-1)),
		geometry.NewPoint2D(0, float64(height-1)),
	}
	inside := geometry.IntersectPolygons(quad[:], bounds)
	return geometry.PolygonArea(inside) / area
}

func writePNG(g grayproc.Gray, path string) error {
	r, ok := g.RasterU8()
	if !ok {
		return fmt.Errorf("rectified image is not 8-bit")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.GrayImage())
}
