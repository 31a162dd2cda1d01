// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package randchart generates random charts for demos.
package randchart

import (
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/piechart"
)

// Defaults used by the demo.
const (
	DefaultDimension  = 400.0
	DefaultMaxSectors = 20
	DefaultMaxValue   = 200.0
)

// Generator produces random charts. It is not safe for concurrent use;
// give every goroutine its own Generator.
type Generator struct {
	rng *rand.Rand

	// Dimension is the side length of generated charts.
	Dimension float64
	// MaxSectors is the inclusive upper bound of the sector count.
	// Negative values are treated as 0.
	MaxSectors int
	// MaxValue bounds every entry value to [0, MaxValue).
	MaxValue float64
}

// New creates a generator with the demo defaults, seeded deterministically.
func New(seed uint64) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Dimension:  DefaultDimension,
		MaxSectors: DefaultMaxSectors,
		MaxValue:   DefaultMaxValue,
	}
}

// Chart returns a new random chart: a random angle offset and base color and
// between 0 and MaxSectors entries with random values.
func (g *Generator) Chart() (*piechart.Chart, error) {
	chart, err := piechart.New(g.Dimension,
		piechart.WithAngleOffset(360*g.rng.Float64()),
		piechart.WithBaseIntensityColor(g.color()),
	)
	if err != nil {
		return nil, err
	}

	n := g.rng.IntN(max(g.MaxSectors, 0) + 1)
	for range n {
		e, err := piechart.NewEntry(g.value(), g.value(), g.value())
		if err != nil {
			return nil, err
		}
		if err := chart.Add(e); err != nil {
			return nil, err
		}
	}
	return chart, nil
}

func (g *Generator) value() float64 {
	return g.MaxValue * g.rng.Float64()
}

func (g *Generator) color() color.Color {
	return color.RGBA{
		R: uint8(g.rng.IntN(256)),
		G: uint8(g.rng.IntN(256)),
		B: uint8(g.rng.IntN(256)),
		A: 0xff,
	}
}
