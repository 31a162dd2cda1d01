package piechart

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Sector is the geometry of one entry, ready to be drawn.
type Sector struct {
	// Index is the position of the source entry in the chart.
	Index int

	// StartAngle is where the sector begins, in degrees counter-clockwise
	// from the positive x-axis. It may be negative.
	StartAngle float64

	// SweepAngle is the angular width in degrees.
	SweepAngle float64

	// Radius is the sector radius in pixels.
	Radius float64

	// Color is the fill color.
	Color gg.RGBA
}

// aggregates are the whole-chart statistics every sector is scaled by.
//
// Weights are summed as w/weightScale so the sum stays finite; weightScale
// is 1 unless the plain sum overflows, in which case it is the largest
// weight.
type aggregates struct {
	angleWeightSum float64
	weightScale    float64
	maxRadius      float64
	maxIntensity   float64
}

func (c *Chart) aggregates() aggregates {
	a := aggregates{weightScale: 1}
	var maxWeight float64
	for _, e := range c.entries {
		a.angleWeightSum += e.angleWeight
		maxWeight = max(maxWeight, e.angleWeight)
		a.maxRadius = max(a.maxRadius, e.radius)
		a.maxIntensity = max(a.maxIntensity, e.colorIntensity)
	}
	if math.IsInf(a.angleWeightSum, 1) {
		a.weightScale = maxWeight
		a.angleWeightSum = 0
		for _, e := range c.entries {
			a.angleWeightSum += e.angleWeight / maxWeight
		}
	}
	return a
}

// share returns the fraction of the full circle taken by weight w.
func (a aggregates) share(w float64) float64 {
	return (w / a.weightScale) / a.angleWeightSum
}

// Layout computes the sectors for the current entries, in entry order.
//
// Drawing starts at the top of the circle rotated clockwise by the angle
// offset, and proceeds clockwise. Each sector gets 360*w/Σw degrees, a radius
// of (dimension/2)*r/max(r) and the base intensity color blended toward
// white by i/max(i).
//
// Degenerate input never produces NaN or infinite values: if all angle
// weights are zero no sectors are returned; if all radii (or intensities)
// are zero every sector has radius zero (or is white). Weights near
// math.MaxFloat64 are rescaled before summing.
func (c *Chart) Layout() []Sector {
	if len(c.entries) == 0 {
		return nil
	}

	agg := c.aggregates()
	log := Logger()
	if agg.angleWeightSum == 0 {
		log.Debug("piechart: angle weight sum is zero, no sectors drawn",
			slog.Int("entries", len(c.entries)))
		return nil
	}
	log.Debug("piechart: layout",
		slog.Int("entries", len(c.entries)),
		slog.Float64("angleWeightSum", agg.angleWeightSum),
		slog.Float64("weightScale", agg.weightScale),
		slog.Float64("maxRadius", agg.maxRadius),
		slog.Float64("maxIntensity", agg.maxIntensity))

	halfDim := c.dimension / 2
	cursor := 90 - c.angleOffset
	sectors := make([]Sector, 0, len(c.entries))

	for i, e := range c.entries {
		sweep := fullAngle * agg.share(e.angleWeight)
		sectors = append(sectors, Sector{
			Index:      i,
			StartAngle: cursor - sweep,
			SweepAngle: sweep,
			Radius:     halfDim * ratio(e.radius, agg.maxRadius),
			Color:      Blend(c.baseIntensityColor, ratio(e.colorIntensity, agg.maxIntensity)),
		})
		cursor -= sweep
	}
	return sectors
}

// ratio returns v/maximum, or 0 when maximum is 0.
func ratio(v, maximum float64) float64 {
	if maximum == 0 {
		return 0
	}
	return v / maximum
}

// Draw renders the chart onto s.
//
// The whole square is filled with the box color, the inscribed circle with
// the background color, and then every sector is filled in entry order.
// Draw reads the chart state only; drawing the same state twice issues the
// same sequence of surface calls.
func (c *Chart) Draw(s Surface) error {
	if s == nil {
		return fmt.Errorf("%w: surface is nil", ErrInvalidArgument)
	}

	d := c.dimension
	s.SetFillColor(c.boxColor)
	if err := s.FillRect(0, 0, d, d); err != nil {
		return fmt.Errorf("piechart: fill box: %w", err)
	}
	s.SetFillColor(c.backgroundColor)
	if err := s.FillEllipse(0, 0, d, d); err != nil {
		return fmt.Errorf("piechart: fill background: %w", err)
	}

	center := d / 2
	for _, sec := range c.Layout() {
		s.SetFillColor(sec.Color)
		r := sec.Radius
		if err := s.FillSector(center-r, center-r, 2*r, 2*r, sec.StartAngle, sec.SweepAngle); err != nil {
			return fmt.Errorf("piechart: fill sector %d: %w", sec.Index, err)
		}
	}
	return nil
}
