package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/piechart/internal/randchart"
)

// randomOptions holds the flags of the random command.
type randomOptions struct {
	output      string
	count       int
	seed        uint64
	interval    time.Duration
	concurrency int
	dimension   float64
}

func newRandomCmd(a *app) *cobra.Command {
	var opts randomOptions

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Render random demo charts",
		Long: `Render random demo charts of up to 20 sectors.

With --count N, N charts are rendered concurrently to numbered files.
With --interval, the output file is regenerated until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", opts.count)
			}
			opts.dimension = a.cfg.Chart.Dimension
			if opts.interval > 0 {
				return runRandomLoop(cmd.Context(), cmd.OutOrStdout(), opts)
			}
			return runRandomBatch(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "random.png", "output PNG file")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of charts to render")
	cmd.Flags().Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "regenerate the chart at this interval until interrupted")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", runtime.GOMAXPROCS(0), "maximum charts rendered at once")
	return cmd
}

// runRandomBatch renders opts.count charts in parallel.
// Every chart has its own generator, seeded from opts.seed and its index.
func runRandomBatch(ctx context.Context, out io.Writer, opts randomOptions) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.concurrency, 1))

	paths := make([]string, opts.count)
	for i := range opts.count {
		paths[i] = numberedPath(opts.output, i, opts.count)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chart, err := newGenerator(opts, opts.seed+uint64(i)).Chart()
			if err != nil {
				return err
			}
			return savePNG(chart, paths[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(out, "wrote %s\n", p)
	}
	return nil
}

// runRandomLoop regenerates opts.output every opts.interval until ctx is done.
func runRandomLoop(ctx context.Context, out io.Writer, opts randomOptions) error {
	gen := newGenerator(opts, opts.seed)
	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for iteration := 0; ; iteration++ {
		chart, err := gen.Chart()
		if err != nil {
			return err
		}
		if err := savePNG(chart, opts.output); err != nil {
			return err
		}
		fmt.Fprintf(out, "iteration %d: %d sectors\n", iteration, chart.Size())

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func newGenerator(opts randomOptions, seed uint64) *randchart.Generator {
	gen := randchart.New(seed)
	if opts.dimension > 0 {
		gen.Dimension = opts.dimension
	}
	return gen
}

// numberedPath inserts the index before the extension when count > 1:
// "out.png" becomes "out-003.png".
func numberedPath(path string, i, count int) string {
	if count == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i, ext)
}
