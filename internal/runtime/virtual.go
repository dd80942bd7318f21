// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

type (
	// VirtualRuntime runs scripts in-process with the mvdan/sh interpreter.
	VirtualRuntime struct {
		workDir    string
		inheritEnv bool
		extraEnv   map[string]string
		logger     *log.Logger
	}

	// Option configures a VirtualRuntime.
	Option func(*VirtualRuntime)
)

// WithWorkDir sets the directory scripts run in. Defaults to the process
// working directory.
func WithWorkDir(dir string) Option {
	return func(r *VirtualRuntime) {
		r.workDir = dir
	}
}

// WithInheritEnv controls whether scripts see the host environment.
// Defaults to true.
func WithInheritEnv(inherit bool) Option {
	return func(r *VirtualRuntime) {
		r.inheritEnv = inherit
	}
}

// WithEnv adds variables to every script's environment.
func WithEnv(env map[string]string) Option {
	return func(r *VirtualRuntime) {
		for k, v := range env {
			r.extraEnv[k] = v
		}
	}
}

// WithLogger sets the runtime's logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *VirtualRuntime) {
		r.logger = logger
	}
}

// NewVirtualRuntime creates a virtual runtime.
func NewVirtualRuntime(opts ...Option) *VirtualRuntime {
	r := &VirtualRuntime{
		inheritEnv: true,
		extraEnv:   make(map[string]string),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validate checks the script's syntax.
func (r *VirtualRuntime) Validate(script string) error {
	_, err := parseScript(script)
	return err
}

// Compile parses script and returns an action that runs it.
//
// With greedyArgs the rest of the input is passed as the single argument $1
// (no argument when the rest is empty). Otherwise every phrase (a word, or a
// quoted string with backslash escapes) becomes its own argument.
func (r *VirtualRuntime) Compile(script string, greedyArgs bool) (cmdtree.Action, error) {
	prog, err := parseScript(script)
	if err != nil {
		return nil, err
	}
	return func(inv *cmdtree.Invocation) cmdtree.Result {
		args, err := scriptArgs(inv, greedyArgs)
		if err != nil {
			return cmdtree.Fail(err)
		}
		return cmdtree.Fail(r.run(inv, prog, args))
	}, nil
}

func parseScript(script string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return nil, fmt.Errorf("script syntax error: %w", err)
	}
	return prog, nil
}

func scriptArgs(inv *cmdtree.Invocation, greedy bool) ([]string, error) {
	inv.Cursor.ReadWhile(unicode.IsSpace)

	if greedy {
		rest, err := cmdtree.Shift(inv, parse.GreedyOptionalPhrase())
		if err != nil || rest == "" {
			return nil, err
		}
		return []string{rest}, nil
	}

	var args []string
	for inv.Cursor.CanRead() {
		start := inv.Cursor.Position()
		arg, err := cmdtree.Shift(inv, parse.Phrase())
		if err != nil {
			return nil, err
		}
		if inv.Cursor.Position() == start {
			break
		}
		args = append(args, arg)
	}
	return args, nil
}

func (r *VirtualRuntime) run(inv *cmdtree.Invocation, prog *syntax.File, args []string) error {
	env := r.buildScriptEnv(inv, args)

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(envToSlice(env)...)),
		interp.StdIO(inv.Stdin, inv.Stdout, inv.Stderr),
		interp.ExecHandlers(r.execHandler),
		// "--" keeps arguments such as "-v" from being read as shell options.
		interp.Params(append([]string{"--"}, args...)...),
	}
	if r.workDir != "" {
		opts = append(opts, interp.Dir(r.workDir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	command := env[EnvCommand]
	r.logger.Debug("running script", "command", command, "args", len(args))

	err = runner.Run(inv.Context(), prog)
	var status interp.ExitStatus
	switch {
	case err == nil:
		return nil
	case errors.As(err, &status):
		if status == 0 {
			return nil
		}
		r.logger.Debug("script failed", "command", command, "status", int(status))
		return &ExitError{Command: command, Code: ExitCode(status)}
	default:
		return fmt.Errorf("run script for %q: %w", command, err)
	}
}

// execHandler logs external programs started by scripts.
func (r *VirtualRuntime) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) > 0 {
			r.logger.Debug("exec", "program", args[0])
		}
		return next(ctx, args)
	}
}
