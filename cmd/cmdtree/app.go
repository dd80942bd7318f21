// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cmdtree/cmdtree/internal/config"
	"github.com/cmdtree/cmdtree/internal/issue"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and reaches
	// configuration, streams and the command tree through it.
	App struct {
		Config  ConfigProvider
		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		workDir string
		flags   rootFlags

		// glamourStyle follows ui.color_scheme once configuration is loaded.
		glamourStyle string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Stdin   io.Reader
		Stdout  io.Writer
		Stderr  io.Writer
		WorkDir string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	rootFlags struct {
		configPath string
		verbose    bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		deps.WorkDir = wd
	}

	return &App{
		Config:       deps.Config,
		stdin:        deps.Stdin,
		stdout:       deps.Stdout,
		stderr:       deps.Stderr,
		workDir:      deps.WorkDir,
		glamourStyle: config.ColorSchemeAuto.GlamourStyle(),
	}, nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		WorkDir:        a.workDir,
	}
}

// loadConfig loads configuration and applies the global flags on top of it.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedID, styledError(err, a.flags.verbose))
	}
	if a.flags.verbose {
		cfg.UI.Verbose = true
	}
	a.glamourStyle = cfg.UI.ColorScheme.GlamourStyle()
	return cfg, nil
}

// newLogger returns the logger handed to every library package: debug level
// in verbose mode, warnings otherwise.
func (a *App) newLogger(cfg *config.Config) *log.Logger {
	level := log.WarnLevel
	if cfg.UI.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: "cmdtree",
		Level:  level,
	})
}
