package piechart

import "github.com/gogpu/gg"

// Surface is the drawing target a Chart renders onto.
//
// Coordinates are in pixels with the origin at the top-left corner. Angles
// are in degrees, measured counter-clockwise from the positive x-axis as seen
// on screen. Fill operations use the color set by the last SetFillColor.
//
// Surfaces are not required to be safe for concurrent use.
type Surface interface {
	// SetFillColor sets the color used by subsequent fills.
	SetFillColor(c gg.RGBA)

	// FillRect fills the axis-aligned rectangle (x, y, w, h).
	FillRect(x, y, w, h float64) error

	// FillEllipse fills the ellipse inscribed in the rectangle (x, y, w, h).
	FillEllipse(x, y, w, h float64) error

	// FillSector fills the pie slice of the ellipse inscribed in (x, y, w, h)
	// that starts at startDeg and sweeps sweepDeg degrees counter-clockwise.
	// The slice is closed through the ellipse center.
	FillSector(x, y, w, h, startDeg, sweepDeg float64) error
}
