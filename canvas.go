package piechart

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Canvas is a Surface backed by a gg drawing context.
//
// Canvas implements io.Closer; Close releases the context only if the
// Canvas created it.
type Canvas struct {
	dc    *gg.Context
	owned bool
}

// Ensure Canvas implements Surface and io.Closer.
var (
	_ Surface   = (*Canvas)(nil)
	_ io.Closer = (*Canvas)(nil)
)

// NewCanvas creates a canvas with a new gg context of the given size.
// The options are passed to gg.NewContext, e.g. gg.WithRenderer for a
// GPU renderer.
func NewCanvas(width, height int, opts ...gg.ContextOption) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height, opts...), owned: true}
}

// NewCanvasFor wraps an existing gg context. The caller keeps ownership
// of dc.
func NewCanvasFor(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Close releases the gg context if the canvas owns it.
func (c *Canvas) Close() error {
	if !c.owned {
		return nil
	}
	return c.dc.Close()
}

// SetFillColor implements Surface.
func (c *Canvas) SetFillColor(col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	c.dc.DrawRectangle(x, y, w, h)
	return c.dc.Fill()
}

// FillEllipse implements Surface.
func (c *Canvas) FillEllipse(x, y, w, h float64) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	c.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	return c.dc.Fill()
}

// FillSector implements Surface.
//
// gg has y pointing down, so a counter-clockwise screen angle θ is the
// parametric angle -θ. The slice from startDeg sweeping sweepDeg on screen
// is therefore traced from -(start+sweep) to -start.
func (c *Canvas) FillSector(x, y, w, h, startDeg, sweepDeg float64) error {
	if w <= 0 || h <= 0 || sweepDeg <= 0 {
		return nil
	}
	sweepDeg = math.Min(sweepDeg, fullAngle)

	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	a1 := -radians(startDeg + sweepDeg)
	a2 := -radians(startDeg)

	c.dc.MoveTo(cx, cy)
	c.dc.LineTo(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))

	if rx == ry {
		c.dc.DrawArc(cx, cy, rx, a1, a2)
	} else {
		c.ellipticalArc(cx, cy, rx, ry, a1, a2)
	}
	c.dc.ClosePath()

	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("piechart: fill sector: %w", err)
	}
	return nil
}

// ellipticalArc appends the arc of an axis-aligned ellipse from a1 to a2.
// gg's DrawEllipticalArc scales only the center, not the radii, so
// non-circular sectors are traced here.
func (c *Canvas) ellipticalArc(cx, cy, rx, ry, a1, a2 float64) {
	const maxStep = math.Pi / 2
	n := int(math.Ceil((a2 - a1) / maxStep))
	step := (a2 - a1) / float64(n)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		c.ellipseSegment(cx, cy, rx, ry, s, s+step)
	}
}

// ellipseSegment appends one cubic Bézier approximating the elliptical arc
// from a1 to a2. a2-a1 must not exceed π/2.
func (c *Canvas) ellipseSegment(cx, cy, rx, ry, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	c1x := cx + rx*(cos1-alpha*sin1)
	c1y := cy + ry*(sin1+alpha*cos1)
	c2x := cx + rx*(cos2+alpha*sin2)
	c2y := cy + ry*(sin2-alpha*cos2)

	c.dc.CubicTo(c1x, c1y, c2x, c2y, cx+rx*cos2, cy+ry*sin2)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// MaxRenderSize is the largest side length, in pixels, Render will allocate.
const MaxRenderSize = 16384

// Render draws the chart onto a new Canvas of ceil(Dimension) pixels.
// The caller must Close the returned canvas. Charts larger than
// MaxRenderSize return an error wrapping ErrTooLarge; draw those onto a
// Surface of your own instead.
func (c *Chart) Render(opts ...gg.ContextOption) (*Canvas, error) {
	side := math.Ceil(c.dimension)
	if side > MaxRenderSize {
		return nil, fmt.Errorf("%w: %g pixels per side, limit %d", ErrTooLarge, side, MaxRenderSize)
	}
	size := int(side)
	cv := NewCanvas(size, size, opts...)
	if err := c.Draw(cv); err != nil {
		_ = cv.Close()
		return nil, err
	}
	return cv, nil
}
