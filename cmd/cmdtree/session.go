// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cmdtree/cmdtree/internal/cmdfile"
	"github.com/cmdtree/cmdtree/internal/config"
	"github.com/cmdtree/cmdtree/internal/discovery"
	"github.com/cmdtree/cmdtree/internal/issue"
	"github.com/cmdtree/cmdtree/internal/runtime"
	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

// session is one assembled command tree with the executor built over it.
type session struct {
	cfg         *config.Config
	logger      *log.Logger
	files       []discovery.CommandFile
	root        *discovery.Root
	executor    *cmdtree.Executor
	diagnostics []discovery.Diagnostic
}

// openSession loads configuration and command files, assembles the tree and
// prints any discovery diagnostics to stderr.
func (a *App) openSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	logger := a.newLogger(cfg)

	files, diags := discovery.FindCommandFiles(a.workDir, cfg.CommandFiles)
	loader := a.newLoader(logger)

	reg := discovery.NewRegistry()
	for _, f := range files {
		regs, err := loader.Load(f.Path)
		if err != nil {
			fileErr := commandFileError(f.Path, err)
			return nil, newServiceError(fileErr, issue.CommandFileParseErrorID, styledError(fileErr, a.flags.verbose))
		}
		logger.Debug("loaded command file", "file", f.Path, "source", f.Source.String(), "commands", len(regs))
		reg.Add(regs...)
	}

	root, err := reg.Assemble(discovery.WithLogger(logger))
	if err != nil {
		cycleErr := assemblyError(err)
		return nil, newServiceError(cycleErr, issue.DependencyCycleID, styledError(cycleErr, a.flags.verbose))
	}
	diags = append(diags, root.Diagnostics()...)
	a.renderDiagnostics(diags)

	finder := cmdtree.NewFinder(root.Node(), cmdtree.WithSeparator(separator(cfg.ArgumentSeparator)))
	executor := cmdtree.NewExecutor(finder,
		cmdtree.WithArgumentSeparator(separator(cfg.CommandSeparator)),
		cmdtree.WithStdio(a.stdin, a.stdout, a.stderr),
		cmdtree.WithLogger(logger),
		cmdtree.WithAbnormalHandler(showUsageHandler),
	)

	return &session{
		cfg:         cfg,
		logger:      logger,
		files:       files,
		root:        root,
		executor:    executor,
		diagnostics: diags,
	}, nil
}

func (a *App) newLoader(logger *log.Logger) *cmdfile.Loader {
	vr := runtime.NewVirtualRuntime(
		runtime.WithWorkDir(a.workDir),
		runtime.WithLogger(logger),
	)
	return cmdfile.NewLoader(
		cmdfile.WithScriptCompiler(vr),
		cmdfile.WithLogger(logger),
	)
}

func separator(s config.Separator) *parse.Matcher {
	return parse.Wrap(parse.Literal(string(s)))
}

// showUsageHandler prints the usage of the matched chain for the usage key
// and reports every other key as an error.
func showUsageHandler(inv *cmdtree.Invocation, key cmdtree.AbnormalKey) error {
	if key == cmdtree.KeyShowUsage {
		fmt.Fprintf(inv.Stderr, "Usage: %s\n", inv.Usage())
		return nil
	}
	return &cmdtree.AbnormalResultError{Key: key, Chain: inv.Chain}
}

func commandFileError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load command file").
		WithResource(path).
		WithIssue(issue.CommandFileParseErrorID).
		WithSuggestion("Run 'cmdtree validate' to list every problem").
		Wrap(err).
		BuildError()
}

func assemblyError(err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("assemble command tree").
		Wrap(err)
	if errors.Is(err, discovery.ErrCommandCycle) {
		ctx = ctx.WithIssue(issue.DependencyCycleID).
			WithSuggestion("Remove one of the 'parent' references on the printed path")
	}
	return ctx.BuildError()
}

func (a *App) renderDiagnostics(diags []discovery.Diagnostic) {
	for _, d := range diags {
		label := WarningStyle.Render("warning:")
		if d.Severity == discovery.SeverityError {
			label = ErrorStyle.Render("error:")
		}
		fmt.Fprintf(a.stderr, "%s %s\n", label, d.Message)
	}
}
