// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newRunCommand(app *App) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <input...>",
		Short: "Run the command matching one input line",
		Long: `Run the command matching one input line.

The arguments are joined with single spaces into the input line, which is
matched against the command tree. Everything after the matched command is
handed to it as its argument text.`,
		Example: `  cmdtree run ping echo '"hello world"'
  cmdtree run ping echo hello world
  cmdtree run -- calc -5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInput(cmd.Context(), app, strings.Join(args, " "))
		},
	}
	// Flags after the input belong to the input.
	runCmd.Flags().SetInterspersed(false)
	return runCmd
}

func runInput(ctx context.Context, app *App, input string) error {
	s, err := app.openSession(ctx)
	if err != nil {
		return err
	}
	if err := s.executor.Execute(ctx, input, nil); err != nil {
		return app.executionError(err)
	}
	return nil
}
