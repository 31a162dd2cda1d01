package piechart

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// Default chart colors.
var (
	DefaultBoxColor           = gg.White
	DefaultBackgroundColor    = gg.White
	DefaultBaseIntensityColor = gg.Black
)

// Blend shifts c toward white as t decreases.
//
// At t = 1 the color is returned unchanged, at t = 0 it is white. Each RGB
// channel moves linearly: ch' = ch + (1-ch)(1-t). The result is always
// opaque. t is clamped to [0, 1].
func Blend(c gg.RGBA, t float64) gg.RGBA {
	t = clamp01(t)
	s := 1 - t
	return gg.RGBA{
		R: c.R + (1-c.R)*s,
		G: c.G + (1-c.G)*s,
		B: c.B + (1-c.B)*s,
		A: 1,
	}
}

// opaque converts a standard color to an opaque gg.RGBA.
// The alpha channel is discarded after un-premultiplying. A typed nil such
// as (*color.RGBA)(nil) panics inside its RGBA method; that is reported as
// ErrInvalidArgument too.
func opaque(c color.Color) (rgba gg.RGBA, err error) {
	if c == nil {
		return gg.RGBA{}, fmt.Errorf("%w: color is nil", ErrInvalidArgument)
	}
	defer func() {
		if r := recover(); r != nil {
			rgba, err = gg.RGBA{}, fmt.Errorf("%w: color %T: %v", ErrInvalidArgument, c, r)
		}
	}()

	p := gg.FromColor(c).Unpremultiply()
	return gg.RGBA{
		R: clamp01(p.R),
		G: clamp01(p.G),
		B: clamp01(p.B),
		A: 1,
	}, nil
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
