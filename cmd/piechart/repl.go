package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/piechart/internal/repl"
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Edit a chart interactively",
		Long: `Start a line-based editing session on standard input.
The chart starts from the config file. Type help for the commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := a.cfg.Chart.Build()
			if err != nil {
				return fmt.Errorf("invalid chart config: %w", err)
			}
			s := repl.NewSession(chart, cmd.OutOrStdout())
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				s.SetPrompt("")
			}
			if err := s.Run(cmd.Context(), cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "do not print a prompt")
	return cmd
}
