package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/piechart"
)

// run executes the CLI with args and returns its standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { piechart.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodePNG(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "piechart dev")
	assert.Contains(t, out, piechart.Version)
}

func TestRenderFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "chart.yaml")
	outPath := filepath.Join(dir, "chart.png")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
chart:
  dimension: 64
  colors:
    intensity: "#336699"
  entries:
    - {radius: 1, angle: 2, intensity: 3}
    - {radius: 3, angle: 2, intensity: 1}
`), 0o600))

	out, err := run(t, "", "--config", cfgPath, "render", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 entries)")

	w, h := decodePNG(t, outPath)
	assert.Equal(t, 64, w)
	assert.Equal(t, 64, h)
}

func TestRenderInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("chart:\n  dimension: -5\n"), 0o600))

	_, err := run(t, "", "--config", cfgPath, "render", "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, piechart.ErrInvalidDimension)
}

func TestRandomBatch(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := run(t, "", "random", "-n", "3", "--seed", "9", "-o", "demo.png")
	require.NoError(t, err)
	for _, name := range []string{"demo-000.png", "demo-001.png", "demo-002.png"} {
		assert.Contains(t, out, name)
		w, _ := decodePNG(t, filepath.Join(dir, name))
		assert.Equal(t, 400, w)
	}

	_, err = run(t, "", "random", "-n", "0")
	assert.Error(t, err)
}

func TestRandomLoopStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"random", "--interval", "10ms", "-o", "loop.png"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.ExecuteContext(ctx))
	t.Cleanup(func() { piechart.SetLogger(nil) })

	assert.Contains(t, out.String(), "iteration 0:")
	_, err := os.Stat(filepath.Join(dir, "loop.png"))
	assert.NoError(t, err)
}

func TestReplSession(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	outPath := filepath.Join(dir, "repl.png")

	stdin := strings.Join([]string{
		"add 1 1 1",
		"add 2 3 4",
		"intensity-color tomato",
		"remove 9",
		"list",
		"render " + outPath,
		"quit",
	}, "\n")
	out, err := run(t, stdin, "repl", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "error: piechart: index out of range")
	assert.Contains(t, out, "intensity #ff6347")
	assert.Contains(t, out, "wrote "+outPath)

	w, _ := decodePNG(t, outPath)
	assert.Equal(t, 400, w)
}

func TestNumberedPath(t *testing.T) {
	assert.Equal(t, "a.png", numberedPath("a.png", 0, 1))
	assert.Equal(t, "a-002.png", numberedPath("a.png", 2, 5))
	assert.Equal(t, "dir/out-010", numberedPath("dir/out", 10, 11))
}
