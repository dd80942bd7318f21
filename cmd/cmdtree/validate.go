// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdtree/cmdtree/internal/discovery"
)

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every command file and the assembled tree",
		Long: `Check every command file and the assembled tree.

Unlike the other commands, validate does not stop at the first broken file:
each file is decoded, checked against the schema and has its scripts parsed,
then the commands of all valid files are assembled to detect parent cycles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateFiles(cmd.Context(), app)
		},
	}
}

func validateFiles(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	logger := app.newLogger(cfg)
	loader := app.newLoader(logger)

	files, diags := discovery.FindCommandFiles(app.workDir, cfg.CommandFiles)
	failed := len(diags) > 0
	app.renderDiagnostics(diags)

	if len(files) == 0 {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("No command files found."))
	}

	reg := discovery.NewRegistry()
	for _, f := range files {
		regs, err := loader.Load(f.Path)
		if err != nil {
			failed = true
			fmt.Fprintf(app.stdout, "%s %s\n", ErrorStyle.Render("✗"), f.Path)
			fmt.Fprintf(app.stdout, "  %s\n", err)
			continue
		}
		reg.Add(regs...)
		fmt.Fprintf(app.stdout, "%s %s (%d commands)\n", SuccessStyle.Render("✓"), f.Path, len(regs))
	}

	root, err := reg.Assemble(discovery.WithLogger(logger))
	if err != nil {
		failed = true
		fmt.Fprintf(app.stdout, "%s %s\n", ErrorStyle.Render("✗"), err)
	} else {
		app.renderDiagnostics(root.Diagnostics())
	}

	if failed {
		return &ExitError{Code: 1}
	}
	fmt.Fprintln(app.stdout, SuccessStyle.Render("All command files are valid."))
	return nil
}
