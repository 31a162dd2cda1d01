// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart"
)

// ErrInjected is the default error returned by a Recorder after FailAfter.
var ErrInjected = errors.New("recording: injected failure")

// Recorder captures surface calls as commands.
//
// Example:
//
//	rec := recording.NewRecorder()
//	_ = chart.Draw(rec)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command

	// fills counts fill commands; failAt < 0 disables failure injection.
	fills   int
	failAt  int
	failErr error
}

// Ensure Recorder implements piechart.Surface.
var _ piechart.Surface = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 16),
		failAt:   -1,
	}
}

// FailAfter makes the Recorder return err from every fill after the first
// n fills have succeeded. Failed fills are not recorded. A nil err means
// ErrInjected.
func (r *Recorder) FailAfter(n int, err error) {
	if err == nil {
		err = ErrInjected
	}
	r.failAt = n
	r.failErr = err
}

// SetFillColor implements piechart.Surface.
func (r *Recorder) SetFillColor(c gg.RGBA) {
	r.commands = append(r.commands, SetFillColorCommand{Color: c})
}

// FillRect implements piechart.Surface.
func (r *Recorder) FillRect(x, y, w, h float64) error {
	return r.fill(FillRectCommand{Rect: Rect{X: x, Y: y, W: w, H: h}})
}

// FillEllipse implements piechart.Surface.
func (r *Recorder) FillEllipse(x, y, w, h float64) error {
	return r.fill(FillEllipseCommand{Bounds: Rect{X: x, Y: y, W: w, H: h}})
}

// FillSector implements piechart.Surface.
func (r *Recorder) FillSector(x, y, w, h, startDeg, sweepDeg float64) error {
	return r.fill(FillSectorCommand{
		Bounds: Rect{X: x, Y: y, W: w, H: h},
		Start:  startDeg,
		Sweep:  sweepDeg,
	})
}

func (r *Recorder) fill(cmd Command) error {
	if r.failAt >= 0 && r.fills >= r.failAt {
		return r.failErr
	}
	r.fills++
	r.commands = append(r.commands, cmd)
	return nil
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Reset discards all recorded commands. Failure injection is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.fills = 0
}

// FinishRecording returns an immutable Recording of the commands so far.
// The Recorder can continue to be used.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{commands: slices.Clone(r.commands)}
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
}

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	return slices.Clone(r.commands)
}

// Len returns the number of commands.
func (r *Recording) Len() int { return len(r.commands) }

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Fills returns the number of commands that paint pixels.
func (r *Recording) Fills() int {
	n := 0
	for _, c := range r.commands {
		if c.Type().IsFill() {
			n++
		}
	}
	return n
}

// Sectors returns the recorded sector fills in order.
func (r *Recording) Sectors() []FillSectorCommand {
	var out []FillSectorCommand
	for _, c := range r.commands {
		if s, ok := c.(FillSectorCommand); ok {
			out = append(out, s)
		}
	}
	return out
}

// Equal reports whether both recordings hold the same commands.
func (r *Recording) Equal(other *Recording) bool {
	return slices.Equal(r.commands, other.commands)
}

// String returns one command per line.
func (r *Recording) String() string {
	var sb strings.Builder
	for _, c := range r.commands {
		fmt.Fprintln(&sb, c)
	}
	return sb.String()
}

// Playback replays the recording onto s. It stops at the first error.
func (r *Recording) Playback(s piechart.Surface) error {
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case SetFillColorCommand:
			s.SetFillColor(c.Color)
		case FillRectCommand:
			err = s.FillRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		case FillEllipseCommand:
			err = s.FillEllipse(c.Bounds.X, c.Bounds.Y, c.Bounds.W, c.Bounds.H)
		case FillSectorCommand:
			err = s.FillSector(c.Bounds.X, c.Bounds.Y, c.Bounds.W, c.Bounds.H, c.Start, c.Sweep)
		default:
			err = fmt.Errorf("recording: unknown command %T", cmd)
		}
		if err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
