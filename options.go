package piechart

import "image/color"

// Option configures a Chart during creation.
//
// Example:
//
//	chart, err := piechart.New(400,
//	    piechart.WithBaseIntensityColor(color.RGBA{R: 200, A: 255}),
//	    piechart.WithAngleOffset(45),
//	)
type Option func(*chartOptions)

// chartOptions holds optional configuration for Chart creation.
// Values are validated by New through the regular setters.
type chartOptions struct {
	boxColor           color.Color
	backgroundColor    color.Color
	baseIntensityColor color.Color
	angleOffset        float64
	entries            []*Entry
}

// WithBoxColor sets the color of the square behind the chart.
func WithBoxColor(c color.Color) Option {
	return func(o *chartOptions) {
		o.boxColor = c
	}
}

// WithBackgroundColor sets the color of the chart disc under the sectors.
func WithBackgroundColor(c color.Color) Option {
	return func(o *chartOptions) {
		o.backgroundColor = c
	}
}

// WithBaseIntensityColor sets the color used at maximum intensity.
func WithBaseIntensityColor(c color.Color) Option {
	return func(o *chartOptions) {
		o.baseIntensityColor = c
	}
}

// WithAngleOffset sets the initial angle offset in degrees.
func WithAngleOffset(deg float64) Option {
	return func(o *chartOptions) {
		o.angleOffset = deg
	}
}

// WithEntries appends entries to the chart in the given order.
func WithEntries(entries ...*Entry) Option {
	return func(o *chartOptions) {
		o.entries = append(o.entries, entries...)
	}
}
