// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/cmdtree/cmdtree/pkg/cursor"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

type (
	// AbnormalHandler decides what an abnormal result means to the caller.
	// Returning nil treats the invocation as successful.
	AbnormalHandler func(inv *Invocation, key AbnormalKey) error

	// Executor resolves input with a Finder and runs the matched command.
	Executor struct {
		finder     *Finder
		separator  *parse.Matcher
		onAbnormal AbnormalHandler
		logger     *log.Logger
		stdin      io.Reader
		stdout     io.Writer
		stderr     io.Writer
	}

	// ExecutorOption configures an Executor.
	ExecutorOption func(*Executor)
)

// WithArgumentSeparator sets the matcher expected between the command and its
// arguments. Defaults to a single space.
func WithArgumentSeparator(separator *parse.Matcher) ExecutorOption {
	return func(e *Executor) {
		e.separator = separator
	}
}

// WithAbnormalHandler sets the handler for abnormal results.
// The default returns an *AbnormalResultError.
func WithAbnormalHandler(h AbnormalHandler) ExecutorOption {
	return func(e *Executor) {
		e.onAbnormal = h
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger *log.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithStdio sets the streams handed to actions through the Invocation.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewExecutor creates an executor that resolves commands with finder.
func NewExecutor(finder *Finder, opts ...ExecutorOption) *Executor {
	e := &Executor{
		finder:     finder,
		separator:  DefaultSeparator(),
		onAbnormal: defaultAbnormalHandler,
		logger:     log.New(io.Discard),
		stdout:     io.Discard,
		stderr:     io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func defaultAbnormalHandler(inv *Invocation, key AbnormalKey) error {
	return &AbnormalResultError{Key: key, Chain: inv.Chain}
}

// Finder returns the executor's finder.
func (e *Executor) Finder() *Finder {
	return e.finder
}

// Execute resolves input and runs the matched command. req is passed through
// to the action as Invocation.Request.
func (e *Executor) Execute(ctx context.Context, input string, req any) error {
	return e.ExecuteCursor(ctx, cursor.New(input), req)
}

// ExecuteCursor is Execute for a caller-owned cursor.
//
// It returns *CommandNotFoundError when nothing matches, *NoSeparatorError when
// the command is directly followed by text and does not carry
// DataNoArgumentSeparator, the action's error when it fails,
// and the abnormal handler's result for abnormal outcomes.
func (e *Executor) ExecuteCursor(ctx context.Context, c *cursor.Cursor, req any) error {
	chain, ok := e.finder.Find(c)
	if !ok {
		notFound := &CommandNotFoundError{Input: c.ReadRemaining(), Chain: chain}
		e.logger.Debug("command not found", "input", notFound.Input)
		return notFound
	}

	if !e.separator.Match(c) && c.CanRead() && !noArgumentSeparator(chain.Final()) {
		return &NoSeparatorError{
			Err:   parse.NewError(c, "No separator after command!"),
			Chain: chain,
		}
	}

	node := chain.Final()
	inv := &Invocation{
		Cursor:  c,
		Node:    node,
		Chain:   chain,
		Request: req,
		Stdin:   e.stdin,
		Stdout:  e.stdout,
		Stderr:  e.stderr,
		ctx:     ctx,
	}

	e.logger.Debug("executing command", "chain", chain.String(), "position", c.Position())

	res := node.action(inv)
	switch res.Kind {
	case ResultOK:
		return nil
	case ResultAbnormal:
		e.logger.Debug("abnormal result", "chain", chain.String(), "key", res.Key)
		return e.onAbnormal(inv, res.Key)
	default:
		e.logger.Debug("command failed", "chain", chain.String(), "err", res.Err)
		return res.Err
	}
}
