package piechart

import (
	"fmt"
	"math"
)

// Entry is a single data point of a chart.
//
// Radius controls how far the sector extends from the center, AngleWeight
// its share of the full circle and ColorIntensity its shading. All three are
// finite and non-negative; the setters refuse anything else, so an Entry can
// never hold an invalid value.
//
// The zero value is a valid, degenerate entry.
type Entry struct {
	radius         float64
	angleWeight    float64
	colorIntensity float64
}

// NewEntry creates an entry with the given values.
// Returns an error wrapping ErrInvalidValue if any value is rejected.
func NewEntry(radius, angleWeight, colorIntensity float64) (*Entry, error) {
	e := &Entry{}
	if err := e.SetRadius(radius); err != nil {
		return nil, err
	}
	if err := e.SetAngleWeight(angleWeight); err != nil {
		return nil, err
	}
	if err := e.SetColorIntensity(colorIntensity); err != nil {
		return nil, err
	}
	return e, nil
}

// Radius returns the radius value.
func (e *Entry) Radius() float64 { return e.radius }

// AngleWeight returns the angle weight.
func (e *Entry) AngleWeight() float64 { return e.angleWeight }

// ColorIntensity returns the color intensity.
func (e *Entry) ColorIntensity() float64 { return e.colorIntensity }

// SetRadius sets the radius value.
func (e *Entry) SetRadius(v float64) error {
	if err := checkValue("radius", v); err != nil {
		return err
	}
	e.radius = v
	return nil
}

// SetAngleWeight sets the angle weight.
func (e *Entry) SetAngleWeight(v float64) error {
	if err := checkValue("angle weight", v); err != nil {
		return err
	}
	e.angleWeight = v
	return nil
}

// SetColorIntensity sets the color intensity.
func (e *Entry) SetColorIntensity(v float64) error {
	if err := checkValue("color intensity", v); err != nil {
		return err
	}
	e.colorIntensity = v
	return nil
}

// Clone returns an independent copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	return &c
}

// String returns a human-readable representation of the entry.
func (e *Entry) String() string {
	return fmt.Sprintf("Entry{radius=%g, angle=%g, intensity=%g}",
		e.radius, e.angleWeight, e.colorIntensity)
}

// checkValue rejects NaN, infinite and negative values.
func checkValue(name string, v float64) error {
	switch {
	case math.IsNaN(v):
		return fmt.Errorf("%w: %s is NaN", ErrInvalidValue, name)
	case math.IsInf(v, 0):
		return fmt.Errorf("%w: %s is infinite", ErrInvalidValue, name)
	case v < 0:
		return fmt.Errorf("%w: %s is negative: %g", ErrInvalidValue, name, v)
	}
	return nil
}
