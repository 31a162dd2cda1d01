// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures the calls a chart makes on its surface.
//
// A Recorder implements piechart.Surface. Instead of rasterizing it appends
// typed command values, which can be inspected, compared and replayed to any
// other surface. Because Chart.Draw is deterministic, two recordings of the
// same chart state are equal command for command.
//
// # Example
//
//	rec := recording.NewRecorder()
//	if err := chart.Draw(rec); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//	fmt.Println(r.Count(recording.CmdFillSector), "sectors")
//
//	// Replay onto a raster canvas later
//	cv := piechart.NewCanvas(400, 400)
//	err := r.Playback(cv)
//
// Commands are plain comparable structs; each prints as a readable line.
package recording
