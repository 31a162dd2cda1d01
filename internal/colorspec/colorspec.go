// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package colorspec parses the textual colors accepted by the piechart CLI.
package colorspec

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for text that is neither a hex triplet nor a
// known color name.
var ErrInvalidColor = errors.New("colorspec: invalid color")

// Parse converts s into an opaque color.
//
// Accepted forms are "#rgb", "#rrggbb" (the leading '#' is optional) and the
// SVG 1.1 color keywords, e.g. "steelblue". Matching is case-insensitive.
func Parse(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(name, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Format renders c as "#rrggbb".
func Format(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	v = v*255 + 0.5
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
