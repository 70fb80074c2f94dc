// Command docscan rectifies a photographed document page, binarizes it
// with Sauvola's method and prints the text Tesseract recognizes on it.
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
	"grayproc/internal/ocr"
	"grayproc/internal/version"
	"grayproc/pkg/geometry"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to the photographed page (TIFF, PNG, or JPEG)")
	corners := flag.String("corners", "", "Page corners clockwise from top-left: x0,y0,x1,y1,x2,y2,x3,y3")
	width := flag.Int("width", 1240, "Rectified page width in pixels")
	height := flag.Int("height", 1754, "Rectified page height in pixels")
	radius := flag.Int("radius", 15, "Sauvola window radius")
	k := flag.Float64("k", 0.3, "Sauvola sensitivity")
	lang := flag.String("lang", "eng", "Tesseract language code")
	pagePath := flag.String("page", "", "Optional path to save the binarized page PNG")
	flag.Parse()

	if *imagePath == "" || *corners == "" {
		fmt.Println("Usage: docscan -image <path> -corners x0,y0,...,x3,y3 [-width px] [-height px] [-radius 15] [-k 0.3] [-lang eng] [-page out.png]")
		os.Exit(1)
	}

	fmt.Printf("docscan %s (%s)\n", version.Version, version.GitCommit)

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

	fmt.Printf("\n=== Rectifying page ===\n")
	start := time.Now()
	page, err := gray.RemovePerspective(*width, *height, quad[0], quad[1], quad[2], quad[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Rectification failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rectified to %dx%d in %v\n", page.Width(), page.Height(), time.Since(start))

	fmt.Printf("\n=== Binarizing (Sauvola r=%d k=%.2f) ===\n", *radius, *k)
	bin, err := page.ThresholdSauvola(*radius, *k, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Binarization failed: %v\n", err)
		os.Exit(1)
	}
	ink := float64(bin.CountOnes()) / float64(bin.Width()*bin.Height())
	fmt.Printf("Ink coverage: %.1f%%\n", ink*100)

	// Tesseract wants dark text on a light background; the down threshold
	// marks the dark text pixels, so flip before rendering.
	pageImg, err := bin.Invert().ToImage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render page: %v\n", err)
		os.Exit(1)
	}

	if *pagePath != "" {
		if err := savePNG(pageImg, *pagePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save page: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved binarized page to %s\n", *pagePath)
	}

	fmt.Printf("\n=== Recognizing (%s) ===\n", *lang)
	engine, err := ocr.NewEngine(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OCR setup failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	start = time.Now()
	text, err := engine.RecognizeImage(pageImg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OCR failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Recognized %d characters in %v\n", len(text), time.Since(start))

	fmt.Printf("\n=== Text ===\n%s\n", text)
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

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
