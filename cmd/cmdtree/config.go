// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdtree/cmdtree/internal/config"
	"github.com/cmdtree/cmdtree/internal/issue"
)

// newConfigCommand creates the `cmdtree config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cmdtree configuration",
		Long: `Manage cmdtree configuration.

Configuration is stored in:
  - Linux: $XDG_CONFIG_HOME/cmdtree/config.cue (default ~/.config)
  - macOS: ~/Library/Application Support/cmdtree/config.cue
  - Windows: %APPDATA%\cmdtree\config.cue

A config.cue in the working directory is used when none of those exist.
Environment variables prefixed with CMDTREE_ override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, source, err := config.LoadWithSource(ctx, app.loadOptions())
	if err != nil {
		return newServiceError(err, issue.ConfigLoadFailedID, styledError(err, app.flags.verbose))
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	if source == "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), source)
	}
	fmt.Fprintln(app.stdout)

	files := "(none)"
	if len(cfg.CommandFiles) > 0 {
		files = strings.Join(cfg.CommandFiles, ", ")
	}

	rows := [][2]string{
		{"argument_separator", fmt.Sprintf("%q", cfg.ArgumentSeparator)},
		{"command_separator", fmt.Sprintf("%q", cfg.CommandSeparator)},
		{"command_files", files},
		{"ui.verbose", fmt.Sprintf("%v", cfg.UI.Verbose)},
		{"ui.color_scheme", cfg.UI.ColorScheme.String()},
		{"repl.prompt", fmt.Sprintf("%q", cfg.REPL.Prompt)},
		{"repl.exit_word", cfg.REPL.ExitWord},
	}
	for _, row := range rows {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render(row[0]), SuccessStyle.Render(row[1]))
	}
	return nil
}

// configPath returns the file configuration is read from, or the default
// location when no file exists yet.
func configPath(ctx context.Context, app *App) (string, error) {
	_, source, err := config.LoadWithSource(ctx, app.loadOptions())
	if err != nil {
		return "", newServiceError(err, issue.ConfigLoadFailedID, styledError(err, app.flags.verbose))
	}
	if source != "" {
		return source, nil
	}
	return config.DefaultPath("")
}

func initConfig(app *App, force bool) error {
	path := app.flags.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(""); err != nil {
			return err
		}
	}

	if err := config.WriteDefault(path, force); err != nil {
		return issue.NewErrorContext().
			WithOperation("create config file").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedID).
			WithSuggestion("Pass --force to overwrite an existing file").
			Wrap(err).
			BuildError()
	}
	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created config file:"), path)
	return nil
}
