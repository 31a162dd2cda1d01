package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/piechart"
	"github.com/gogpu/piechart/internal/config"
)

// app is the per-invocation state shared by the subcommands.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "piechart",
		Short: "Render and edit 3D pie charts",
		Long: `piechart renders pie charts whose sectors encode three values:
angular width, radius and color intensity.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.Logging.Level = level
			}
			logger, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			piechart.SetLogger(logger)
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./piechart.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(),
		newRenderCmd(a),
		newRandomCmd(a),
		newReplCmd(a),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "piechart %s (library %s)\n", version, piechart.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
