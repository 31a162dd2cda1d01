package piechart

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEntrySetters(t *testing.T) {
	setters := map[string]struct {
		set func(*Entry, float64) error
		get func(*Entry) float64
	}{
		"radius":    {(*Entry).SetRadius, (*Entry).Radius},
		"angle":     {(*Entry).SetAngleWeight, (*Entry).AngleWeight},
		"intensity": {(*Entry).SetColorIntensity, (*Entry).ColorIntensity},
	}

	invalid := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1, -math.SmallestNonzeroFloat64}
	valid := []float64{0, math.SmallestNonzeroFloat64, 1, 42.5, math.MaxFloat64}

	for name, s := range setters {
		t.Run(name, func(t *testing.T) {
			e := &Entry{}
			for _, v := range valid {
				if err := s.set(e, v); err != nil {
					t.Errorf("set(%g) = %v, want nil", v, err)
				}
				if got := s.get(e); got != v {
					t.Errorf("get() = %g, want %g", got, v)
				}
			}

			if err := s.set(e, 7); err != nil {
				t.Fatal(err)
			}
			for _, v := range invalid {
				err := s.set(e, v)
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("set(%g) = %v, want ErrInvalidValue", v, err)
				}
				if got := s.get(e); got != 7 {
					t.Errorf("rejected set(%g) changed value to %g", v, got)
				}
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(1, 2, 3)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	if e.Radius() != 1 || e.AngleWeight() != 2 || e.ColorIntensity() != 3 {
		t.Errorf("NewEntry(1, 2, 3) = %v", e)
	}

	for _, args := range [][3]float64{{-1, 0, 0}, {0, math.NaN(), 0}, {0, 0, math.Inf(1)}} {
		if _, err := NewEntry(args[0], args[1], args[2]); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("NewEntry(%v) error = %v, want ErrInvalidValue", args, err)
		}
	}
}

func TestEntryCloneAndString(t *testing.T) {
	e := entry(t, 1, 2, 3)
	c := e.Clone()
	if err := c.SetRadius(9); err != nil {
		t.Fatal(err)
	}
	if e.Radius() != 1 {
		t.Errorf("Clone shares state: original radius = %g", e.Radius())
	}

	s := e.String()
	for _, want := range []string{"radius=1", "angle=2", "intensity=3"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

// entry is a test helper building a valid entry.
func entry(t *testing.T, radius, angle, intensity float64) *Entry {
	t.Helper()
	e, err := NewEntry(radius, angle, intensity)
	if err != nil {
		t.Fatalf("NewEntry(%g, %g, %g): %v", radius, angle, intensity, err)
	}
	return e
}
