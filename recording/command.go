// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"

	"github.com/gogpu/gg"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetFillColor CommandType = iota // Set fill color
	CmdFillRect                        // Fill a rectangle
	CmdFillEllipse                     // Fill an ellipse
	CmdFillSector                      // Fill a pie slice
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetFillColor: "SetFillColor",
	CmdFillRect:     "FillRect",
	CmdFillEllipse:  "FillEllipse",
	CmdFillSector:   "FillSector",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsFill reports whether the command paints pixels.
func (c CommandType) IsFill() bool {
	return c == CmdFillRect || c == CmdFillEllipse || c == CmdFillSector
}

// Command is the interface implemented by all command types.
// All command types are comparable values.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	X, Y, W, H float64
}

// String returns the rectangle as "(x, y, w×h)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g×%g)", r.X, r.Y, r.W, r.H)
}

// SetFillColorCommand sets the color used by subsequent fills.
type SetFillColorCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (SetFillColorCommand) Type() CommandType { return CmdSetFillColor }

func (c SetFillColorCommand) String() string {
	return fmt.Sprintf("SetFillColor(%.3f, %.3f, %.3f, %.3f)", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
}

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) String() string {
	return "FillRect" + c.Rect.String()
}

// FillEllipseCommand fills the ellipse inscribed in Bounds.
type FillEllipseCommand struct {
	Bounds Rect
}

// Type implements Command.
func (FillEllipseCommand) Type() CommandType { return CmdFillEllipse }

func (c FillEllipseCommand) String() string {
	return "FillEllipse" + c.Bounds.String()
}

// FillSectorCommand fills a pie slice of the ellipse inscribed in Bounds.
type FillSectorCommand struct {
	Bounds Rect
	// Start is the start angle in degrees, counter-clockwise on screen.
	Start float64
	// Sweep is the angular extent in degrees.
	Sweep float64
}

// Type implements Command.
func (FillSectorCommand) Type() CommandType { return CmdFillSector }

func (c FillSectorCommand) String() string {
	return fmt.Sprintf("FillSector%s start=%g sweep=%g", c.Bounds.String(), c.Start, c.Sweep)
}
