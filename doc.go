// Package piechart renders "3D" pie charts: circular charts whose sectors
// encode three quantities at once.
//
// # Overview
//
// Every Entry carries a radius, an angle weight and a color intensity.
// The angle weight decides how much of the circle a sector takes, the
// radius how far it reaches from the center, and the intensity how close
// its color is to the chart's base intensity color (low intensities fade
// toward white).
//
// # Quick Start
//
//	chart, _ := piechart.New(400, piechart.WithBaseIntensityColor(color.RGBA{B: 200, A: 255}))
//
//	e, _ := piechart.NewEntry(10, 1, 5)
//	_ = chart.Add(e)
//
//	cv, _ := chart.Render()
//	defer cv.Close()
//	_ = cv.SavePNG("chart.png")
//
// # Surfaces
//
// Chart.Draw writes to any Surface. Canvas rasterizes with github.com/gogpu/gg;
// the recording sub-package captures the calls for inspection and replay.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, y increases down
//   - Angles in degrees, counter-clockwise on screen from the positive x-axis
//   - The first sector starts at the top and sectors proceed clockwise
//
// # Concurrency
//
// Chart and Entry are plain values without locking. Synchronize externally
// when sharing them between goroutines.
package piechart

// Version is the current version of the library.
const Version = "0.1.0"
