package piechart

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// fullAngle is the angle of a complete circle in degrees.
const fullAngle = 360.0

// Chart is a square pie chart whose sectors vary in radius, angular width
// and color intensity.
//
// A Chart holds an ordered list of entries; insertion order is draw order.
// The chart never redraws itself: call Draw (or Render) after each change
// that should become visible.
//
// Chart is NOT safe for concurrent use. Callers that mutate a chart from
// one goroutine and draw it from another must synchronize externally.
type Chart struct {
	dimension float64

	boxColor           gg.RGBA
	backgroundColor    gg.RGBA
	baseIntensityColor gg.RGBA

	// angleOffset is always normalized to [0, 360).
	angleOffset float64

	entries []*Entry
}

// New creates a chart of the given side length in pixels.
// Returns an error wrapping ErrInvalidDimension if dimension is NaN,
// infinite or not positive, or the first error reported by an option.
func New(dimension float64, opts ...Option) (*Chart, error) {
	if err := checkDimension(dimension); err != nil {
		return nil, err
	}

	var o chartOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{
		dimension:          dimension,
		boxColor:           DefaultBoxColor,
		backgroundColor:    DefaultBackgroundColor,
		baseIntensityColor: DefaultBaseIntensityColor,
	}

	if o.boxColor != nil {
		if err := c.SetBoxColor(o.boxColor); err != nil {
			return nil, err
		}
	}
	if o.backgroundColor != nil {
		if err := c.SetBackgroundColor(o.backgroundColor); err != nil {
			return nil, err
		}
	}
	if o.baseIntensityColor != nil {
		if err := c.SetBaseIntensityColor(o.baseIntensityColor); err != nil {
			return nil, err
		}
	}
	if err := c.SetAngleOffset(o.angleOffset); err != nil {
		return nil, err
	}
	for _, e := range o.entries {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Dimension returns the side length of the chart in pixels.
func (c *Chart) Dimension() float64 { return c.dimension }

// Width returns the chart width. It always equals Dimension.
func (c *Chart) Width() float64 { return c.dimension }

// Height returns the chart height. It always equals Dimension.
func (c *Chart) Height() float64 { return c.dimension }

// Size returns the number of entries.
func (c *Chart) Size() int { return len(c.entries) }

// Get returns the entry at index i.
func (c *Chart) Get(i int) (*Entry, error) {
	if err := c.checkIndex(i, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[i], nil
}

// Set replaces the entry at index i.
func (c *Chart) Set(i int, e *Entry) error {
	if err := checkEntry(e); err != nil {
		return err
	}
	if err := c.checkIndex(i, len(c.entries)); err != nil {
		return err
	}
	c.entries[i] = e
	return nil
}

// Add appends an entry.
func (c *Chart) Add(e *Entry) error {
	if err := checkEntry(e); err != nil {
		return err
	}
	c.entries = append(c.entries, e)
	return nil
}

// InsertAt inserts an entry before index i. i may equal Size.
func (c *Chart) InsertAt(i int, e *Entry) error {
	if err := checkEntry(e); err != nil {
		return err
	}
	if err := c.checkIndex(i, len(c.entries)+1); err != nil {
		return err
	}
	c.entries = slices.Insert(c.entries, i, e)
	return nil
}

// RemoveAt removes the entry at index i.
func (c *Chart) RemoveAt(i int) error {
	if err := c.checkIndex(i, len(c.entries)); err != nil {
		return err
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	return nil
}

// Clear removes all entries.
func (c *Chart) Clear() {
	clear(c.entries)
	c.entries = c.entries[:0]
}

// Entries returns a copy of the entry list.
// The entries themselves are shared with the chart.
func (c *Chart) Entries() []*Entry {
	return slices.Clone(c.entries)
}

// BoxColor returns the color of the square behind the chart.
func (c *Chart) BoxColor() gg.RGBA { return c.boxColor }

// BackgroundColor returns the color of the chart disc.
func (c *Chart) BackgroundColor() gg.RGBA { return c.backgroundColor }

// BaseIntensityColor returns the color used at maximum intensity.
func (c *Chart) BaseIntensityColor() gg.RGBA { return c.baseIntensityColor }

// SetBoxColor sets the color of the square behind the chart.
// The alpha channel is discarded.
func (c *Chart) SetBoxColor(col color.Color) error {
	rgba, err := opaque(col)
	if err != nil {
		return err
	}
	c.boxColor = rgba
	return nil
}

// SetBackgroundColor sets the color of the chart disc.
// The alpha channel is discarded.
func (c *Chart) SetBackgroundColor(col color.Color) error {
	rgba, err := opaque(col)
	if err != nil {
		return err
	}
	c.backgroundColor = rgba
	return nil
}

// SetBaseIntensityColor sets the color used at maximum intensity.
// Entries with lower intensity are drawn closer to white.
// The alpha channel is discarded.
func (c *Chart) SetBaseIntensityColor(col color.Color) error {
	rgba, err := opaque(col)
	if err != nil {
		return err
	}
	c.baseIntensityColor = rgba
	return nil
}

// AngleOffset returns the angle offset in degrees, in [0, 360).
func (c *Chart) AngleOffset() float64 { return c.angleOffset }

// SetAngleOffset rotates the whole chart clockwise by deg degrees.
// The value is stored modulo 360 in [0, 360).
func (c *Chart) SetAngleOffset(deg float64) error {
	if math.IsNaN(deg) {
		return fmt.Errorf("%w: angle offset is NaN", ErrInvalidValue)
	}
	if math.IsInf(deg, 0) {
		return fmt.Errorf("%w: angle offset is infinite", ErrInvalidValue)
	}
	c.angleOffset = normalizeAngle(deg)
	return nil
}

// normalizeAngle maps deg into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, fullAngle)
	if deg < 0 {
		deg += fullAngle
	}
	// -tiny + 360 rounds to exactly 360.
	if deg >= fullAngle {
		deg = 0
	}
	return deg
}

func (c *Chart) checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(c.entries))
	}
	return nil
}

func checkEntry(e *Entry) error {
	if e == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidArgument)
	}
	return nil
}

func checkDimension(dimension float64) error {
	switch {
	case math.IsNaN(dimension):
		return fmt.Errorf("%w: dimension is NaN", ErrInvalidDimension)
	case math.IsInf(dimension, 0):
		return fmt.Errorf("%w: dimension is infinite", ErrInvalidDimension)
	case dimension <= 0:
		return fmt.Errorf("%w: dimension too small: %g", ErrInvalidDimension, dimension)
	}
	return nil
}
