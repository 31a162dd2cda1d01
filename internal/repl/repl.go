// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package repl implements a line-based editing session for a chart.
//
// Each line is one command; see Help for the vocabulary. Invalid commands
// report an error and the session continues.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/piechart"
	"github.com/gogpu/piechart/internal/colorspec"
)

// Help lists the session commands.
const Help = `commands:
  add <radius> <angle> <intensity>          append an entry
  insert <i> <radius> <angle> <intensity>   insert an entry before index i
  set <i> <radius> <angle> <intensity>      replace entry i
  remove <i>                                remove entry i
  clear                                     remove all entries
  list                                      print chart state
  offset <degrees>                          set the angle offset
  box-color <color>                         set the box color
  background-color <color>                  set the chart background color
  intensity-color <color>                   set the base intensity color
  render <file.png>                         write the chart as PNG
  help                                      print this help
  quit                                      end the session
colors are #rgb, #rrggbb or SVG color names`

// errQuit ends the session.
var errQuit = errors.New("quit")

// ErrUnknownCommand is reported for unrecognized commands.
var ErrUnknownCommand = errors.New("repl: unknown command")

// ErrUsage is reported for commands with wrong arguments.
var ErrUsage = errors.New("repl: usage")

// Session is the state of one editing session.
// A Session is not safe for concurrent use.
type Session struct {
	chart  *piechart.Chart
	out    io.Writer
	prompt string
	logger *slog.Logger
}

// NewSession creates a session editing chart and writing to out.
func NewSession(chart *piechart.Chart, out io.Writer) *Session {
	return &Session{
		chart:  chart,
		out:    out,
		prompt: "> ",
		logger: piechart.Logger(),
	}
}

// SetPrompt changes the prompt printed before each line. An empty prompt
// disables it.
func (s *Session) SetPrompt(p string) { s.prompt = p }

// Chart returns the chart being edited.
func (s *Session) Chart() *piechart.Chart { return s.chart }

// Run reads commands from in until EOF, quit, or ctx is canceled.
//
// Lines are read on a separate goroutine so cancellation does not wait for
// the next line. If in blocks, that goroutine stays in Read until in returns;
// closing in releases it.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		err := s.Exec(line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			s.logger.Debug("repl: command failed", slog.String("line", line), slog.Any("error", err))
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Exec executes a single command line.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "add":
		e, err := parseEntry(args, 0)
		if err != nil {
			return err
		}
		return s.chart.Add(e)
	case "insert", "set":
		if len(args) != 4 {
			return fmt.Errorf("%w: %s <i> <radius> <angle> <intensity>", ErrUsage, cmd)
		}
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		e, err := parseEntry(args, 1)
		if err != nil {
			return err
		}
		if cmd == "insert" {
			return s.chart.InsertAt(i, e)
		}
		return s.chart.Set(i, e)
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("%w: remove <i>", ErrUsage)
		}
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return s.chart.RemoveAt(i)
	case "clear":
		s.chart.Clear()
		return nil
	case "list":
		s.list()
		return nil
	case "offset":
		if len(args) != 1 {
			return fmt.Errorf("%w: offset <degrees>", ErrUsage)
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: offset: %v", ErrUsage, err)
		}
		return s.chart.SetAngleOffset(v)
	case "box-color", "background-color", "intensity-color":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s <color>", ErrUsage, cmd)
		}
		c, err := colorspec.Parse(args[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "box-color":
			return s.chart.SetBoxColor(c)
		case "background-color":
			return s.chart.SetBackgroundColor(c)
		default:
			return s.chart.SetBaseIntensityColor(c)
		}
	case "render":
		if len(args) != 1 {
			return fmt.Errorf("%w: render <file.png>", ErrUsage)
		}
		return s.render(args[0])
	case "help":
		fmt.Fprintln(s.out, Help)
		return nil
	case "quit", "exit":
		return errQuit
	}
	return fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, cmd)
}

func (s *Session) list() {
	c := s.chart
	fmt.Fprintf(s.out, "dimension %g, offset %g, box %s, background %s, intensity %s\n",
		c.Dimension(), c.AngleOffset(),
		colorspec.Format(c.BoxColor()),
		colorspec.Format(c.BackgroundColor()),
		colorspec.Format(c.BaseIntensityColor()))
	for i, e := range c.Entries() {
		fmt.Fprintf(s.out, "%d: %s\n", i, e)
	}
}

func (s *Session) render(path string) error {
	cv, err := s.chart.Render()
	if err != nil {
		return err
	}
	defer cv.Close()
	if err := cv.SavePNG(path); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	fmt.Fprintf(s.out, "wrote %s\n", path)
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q is not an integer", ErrUsage, s)
	}
	return i, nil
}

// parseEntry parses three entry values from args starting at off.
func parseEntry(args []string, off int) (*piechart.Entry, error) {
	if len(args)-off != 3 {
		return nil, fmt.Errorf("%w: want <radius> <angle> <intensity>", ErrUsage)
	}
	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(args[off+i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, args[off+i])
		}
		v[i] = f
	}
	return piechart.NewEntry(v[0], v[1], v[2])
}
