// Command grayview displays an image beside a processed rendition of it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"grayproc"
	"grayproc/internal/version"
	"grayproc/internal/warp"
	"grayproc/pkg/colorutil"
	"grayproc/pkg/geometry"

	_ "golang.org/x/image/tiff"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "Path to image (TIFF, PNG, or JPEG)")
	mode := flag.String("mode", "equalize", "Rendition: equalize, otsu, sauvola, sign, heat, lines, rotate")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: grayview -image <path> [-mode equalize|otsu|sauvola|sign|heat|lines|rotate]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to decode image: %v", err)
	}

	gray := grayproc.FromImage(img)
	log.Printf("Starting grayview %s: %dx%d %s image, mode %s",
		version.Version, gray.Width(), gray.Height(), format, *mode)

	original, err := gray.ToImage()
	if err != nil {
		log.Fatalf("Failed to render original: %v", err)
	}
	rendered, err := render(gray, *mode)
	if err != nil {
		log.Fatalf("Failed to render %s: %v", *mode, err)
	}

	fyneApp := app.New()
	win := fyneApp.NewWindow(fmt.Sprintf("grayview %s", version.Version))

	left := fynecanvas.NewImageFromImage(original)
	left.FillMode = fynecanvas.ImageFillContain
	right := fynecanvas.NewImageFromImage(rendered)
	right.FillMode = fynecanvas.ImageFillContain

	split := container.NewHSplit(
		container.NewBorder(nil, widget.NewLabel("original"), nil, nil, left),
		container.NewBorder(nil, widget.NewLabel(*mode), nil, nil, right),
	)
	win.SetContent(split)
	win.Resize(fyne.NewSize(1200, 700))
	win.ShowAndRun()
}

func render(gray grayproc.Gray, mode string) (image.Image, error) {
	switch mode {
	case "equalize":
		out, err := gray.HistogramEqualize()
		if err != nil {
			return nil, err
		}
		return out.ToImage()
	case "otsu":
		bin, err := gray.ThresholdOtsu(true)
		if err != nil {
			return nil, err
		}
		return bin.ToImage()
	case "sauvola":
		bin, err := gray.ThresholdSauvola(15, 0.3, true)
		if err != nil {
			return nil, err
		}
		return bin.ToImage()
	case "sign":
		grad, err := gray.GradientSobel()
		if err != nil {
			return nil, err
		}
		return grad.DX().VisualizeSign()
	case "heat":
		return renderHeat(gray)
	case "lines":
		return renderLines(gray)
	case "rotate":
		return renderRotate(gray)
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

// renderRotate shows the image after a quarter turn clockwise, resampled
// through the affine path of the warp engine.
func renderRotate(gray grayproc.Gray) (image.Image, error) {
	src, ok := gray.RasterU8()
	if !ok {
		return nil, fmt.Errorf("rotate rendition needs an 8-bit image")
	}

	// Destination-to-source mapping: (u, v) lands on (v, srcHeight-1-u).
	t := geometry.Translation(0, float64(src.Height-1)).Compose(geometry.Rotation(-math.Pi / 2))
	dst := src.NewSize(src.Height, src.Width)
	warp.Warp(dst, src, warp.AffineMapper{T: t},
		warp.DefaultOptions().WithInterpolation(warp.InterpNearest))

	return grayproc.FromU8(dst).ToImage()
}

// renderHeat maps gradient direction to hue and magnitude to brightness.
func renderHeat(gray grayproc.Gray) (image.Image, error) {
	grad, err := gray.GradientSobel()
	if err != nil {
		return nil, err
	}
	mag, err := grad.Magnitude()
	if err != nil {
		return nil, err
	}
	maxMag := mag.MaxAbs()
	if maxMag == 0 {
		maxMag = 1
	}

	dx := grad.DX()
	dy := grad.DY()
	out := image.NewRGBA(image.Rect(0, 0, mag.Width(), mag.Height()))
	for y := 0; y < mag.Height(); y++ {
		for x := 0; x < mag.Width(); x++ {
			angle := math.Atan2(dy.At(x, y), dx.At(x, y))
			hue := (angle + math.Pi) / (2 * math.Pi) * 180
			r, g, b := colorutil.HSVToRGB(hue, 255, 255*mag.At(x, y)/maxMag)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(r + 0.5),
				G: uint8(g + 0.5),
				B: uint8(b + 0.5),
				A: 255,
			})
		}
	}
	return out, nil
}

// renderLines overlays the strongest detected lines on the image.
func renderLines(gray grayproc.Gray) (image.Image, error) {
	out, err := gray.ToImage()
	if err != nil {
		return nil, err
	}
	lines, err := gray.LinesHoughPolar(grayproc.DefaultHoughPolarConfig().WithMaxLines(20))
	if err != nil {
		return nil, err
	}
	log.Printf("Detected %d lines", len(lines))

	halfLength := float64(gray.Width() + gray.Height())
	for _, ln := range lines {
		drawSegment(out, ln.Segment(halfLength), colorutil.Cyan)
	}
	return out, nil
}

// drawSegment rasterizes a segment by stepping one pixel at a time.
func drawSegment(img *image.RGBA, seg geometry.LineSegment, c color.RGBA) {
	steps := int(seg.Length()) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(seg.A.X + t*(seg.B.X-seg.A.X) + 0.5)
		y := int(seg.A.Y + t*(seg.B.Y-seg.A.Y) + 0.5)
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetRGBA(x, y, c)
		}
	}
}
