package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/piechart"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart described by the config file to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = a.cfg.Output
			}

			chart, err := a.cfg.Chart.Build()
			if err != nil {
				return fmt.Errorf("invalid chart config: %w", err)
			}
			if err := savePNG(chart, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d entries)\n", output, chart.Size())
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "output PNG file (default from config)")
	return cmd
}

// savePNG rasterizes chart and writes it to path.
func savePNG(chart *piechart.Chart, path string) error {
	cv, err := chart.Render()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer cv.Close()

	if err := cv.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	piechart.Logger().Info("chart saved", slog.String("path", path), slog.Int("entries", chart.Size()))
	return nil
}
