package piechart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func rgb8(img image.Image, x, y int) (r, g, b uint8) {
	r32, g32, b32, _ := img.At(x, y).RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -8 && d <= 8
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	r, g, b := rgb8(img, x, y)
	if !near(r, want.R) || !near(g, want.G) || !near(b, want.B) {
		t.Errorf("pixel (%d, %d) = (%d, %d, %d), want (%d, %d, %d)", x, y, r, g, b, want.R, want.G, want.B)
	}
}

func TestRenderQuadrants(t *testing.T) {
	// A pale quarter sector at the top-right, the rest of the disc in a
	// full-intensity blue sector, box in black.
	c, err := New(100,
		WithBoxColor(color.Black),
		WithBackgroundColor(color.RGBA{G: 255, A: 255}),
		WithBaseIntensityColor(color.RGBA{B: 255, A: 255}),
	)
	if err != nil {
		t.Fatal(err)
	}
	_ = c.Add(entry(t, 1, 1, 1))
	_ = c.Add(entry(t, 1, 3, 2))

	cv, err := c.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer cv.Close()

	img := cv.Image()
	if got := img.Bounds().Size(); got != image.Pt(100, 100) {
		t.Fatalf("image size = %v, want 100x100", got)
	}

	blue := color.RGBA{B: 255}
	pale := color.RGBA{R: 128, G: 128, B: 255}
	assertPixel(t, img, 2, 2, color.RGBA{})   // box corner
	assertPixel(t, img, 70, 30, pale)         // top-right quarter
	assertPixel(t, img, 30, 70, blue)         // bottom-left
	assertPixel(t, img, 30, 30, blue)         // top-left
	assertPixel(t, img, 70, 70, blue)         // bottom-right
	assertPixel(t, img, 97, 97, color.RGBA{}) // outside the disc
}

func TestRenderNestedRadius(t *testing.T) {
	// Small sector covers the right half, full-size sector the left half.
	c := mustChart(t, 100, entry(t, 1, 1, 1), entry(t, 2, 1, 1))
	_ = c.SetBoxColor(color.Black)
	_ = c.SetBackgroundColor(color.RGBA{G: 255, A: 255})
	_ = c.SetBaseIntensityColor(color.RGBA{R: 255, A: 255})

	cv, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()
	img := cv.Image()

	red := color.RGBA{R: 255}
	green := color.RGBA{G: 255}
	assertPixel(t, img, 60, 50, red)   // inside the small right sector
	assertPixel(t, img, 90, 50, green) // right half, outside radius 25
	assertPixel(t, img, 10, 50, red)   // left half, full radius
}

func TestCanvasFillSectorAngles(t *testing.T) {
	cv := NewCanvas(100, 100)
	defer cv.Close()

	cv.SetFillColor(gg.White)
	if err := cv.FillRect(0, 0, 100, 100); err != nil {
		t.Fatal(err)
	}
	// 0..90 counter-clockwise on screen is the top-right quadrant.
	cv.SetFillColor(gg.Red)
	if err := cv.FillSector(0, 0, 100, 100, 0, 90); err != nil {
		t.Fatal(err)
	}

	img := cv.Image()
	assertPixel(t, img, 75, 25, color.RGBA{R: 255})
	assertPixel(t, img, 75, 75, color.RGBA{R: 255, G: 255, B: 255})
	assertPixel(t, img, 25, 25, color.RGBA{R: 255, G: 255, B: 255})
}

func TestCanvasFillEllipticalSector(t *testing.T) {
	cv := NewCanvas(100, 50)
	defer cv.Close()

	cv.SetFillColor(gg.White)
	if err := cv.FillRect(0, 0, 100, 50); err != nil {
		t.Fatal(err)
	}
	cv.SetFillColor(gg.Red)
	if err := cv.FillSector(0, 0, 100, 50, 0, 90); err != nil {
		t.Fatal(err)
	}

	img := cv.Image()
	red := color.RGBA{R: 255}
	white := color.RGBA{R: 255, G: 255, B: 255}
	assertPixel(t, img, 70, 15, red)
	// Outside the inscribed circle, inside the ellipse.
	assertPixel(t, img, 85, 20, red)
	assertPixel(t, img, 30, 15, white)
	assertPixel(t, img, 70, 35, white)
}

func TestRenderTooLarge(t *testing.T) {
	for _, dim := range []float64{MaxRenderSize + 1, 1e20, math.MaxFloat64} {
		c := mustChart(t, dim, entry(t, 1, 1, 1))
		cv, err := c.Render()
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("Render(%g) error = %v, want ErrTooLarge", dim, err)
		}
		if cv != nil {
			t.Errorf("Render(%g) returned a canvas with an error", dim)
		}
		// Drawing onto a caller-owned surface is not limited.
		if err := c.Draw(&spySurface{}); err != nil {
			t.Errorf("Draw(%g): %v", dim, err)
		}
	}
}

func TestCanvasDegenerateFills(t *testing.T) {
	cv := NewCanvas(10, 10)
	defer cv.Close()
	cv.SetFillColor(gg.Red)
	for _, err := range []error{
		cv.FillSector(5, 5, 0, 0, 0, 90),
		cv.FillSector(0, 0, 10, 10, 0, 0),
		cv.FillEllipse(0, 0, 0, 10),
	} {
		if err != nil {
			t.Errorf("degenerate fill returned %v", err)
		}
	}
}

func TestCanvasEncodePNG(t *testing.T) {
	c := mustChart(t, 32.5, entry(t, 1, 1, 1))
	cv, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(33, 33) {
		t.Errorf("decoded size = %v, want 33x33", got)
	}
}

func TestNewCanvasForDoesNotClose(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer dc.Close()

	cv := NewCanvasFor(dc)
	if cv.Context() != dc {
		t.Error("Context() should return the wrapped context")
	}
	if err := cv.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	cv.SetFillColor(gg.Red)
	if err := cv.FillRect(0, 0, 10, 10); err != nil {
		t.Errorf("FillRect after borrowed Close: %v", err)
	}
}
