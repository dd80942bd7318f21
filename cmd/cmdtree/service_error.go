// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"

	"github.com/cmdtree/cmdtree/internal/discovery"
	"github.com/cmdtree/cmdtree/internal/issue"
	"github.com/cmdtree/cmdtree/internal/runtime"
	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

// ServiceError is an error that carries rendering information for the CLI
// layer: a pre-styled message and the issue catalog entry explaining it.
// Always create via newServiceError.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.ID
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

func newServiceError(err error, issueID issue.ID, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyError maps a failure to the issue catalog entry that explains it.
// Zero means no entry applies.
func classifyError(err error) issue.ID {
	var noSep *cmdtree.NoSeparatorError

	switch {
	case errors.Is(err, cmdtree.ErrCommandNotFound):
		return issue.CommandNotFoundID
	case errors.As(err, &noSep):
		return issue.NoSeparatorID
	case errors.Is(err, parse.ErrParse):
		return issue.ParseFailedID
	case errors.Is(err, runtime.ErrScriptFailed):
		return issue.ScriptFailedID
	case errors.Is(err, discovery.ErrCommandCycle):
		return issue.DependencyCycleID
	}

	if info, ok := issue.IssueOf(err); ok {
		return info.ID()
	}
	return 0
}

// executionError converts an executor failure into the error returned from a
// RunE handler. Script exit statuses become the process exit code.
func (a *App) executionError(err error) error {
	svcErr := newServiceError(err, classifyError(err), styledError(err, a.flags.verbose))

	var exitErr *runtime.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: int(exitErr.Code), Err: svcErr}
	}
	return svcErr
}

// styledError formats err for display. Not-found errors carry the usage of
// the chain where matching stopped.
func styledError(err error, verbose bool) string {
	var sb strings.Builder
	sb.WriteString(ErrorStyle.Render("Error:"))
	sb.WriteByte(' ')
	sb.WriteString(formatErrorForDisplay(err, verbose))
	sb.WriteByte('\n')

	var notFound *cmdtree.CommandNotFoundError
	if errors.As(err, &notFound) {
		if usage := notFound.Usage(); usage != "" {
			fmt.Fprintf(&sb, "%s %s\n", SubtitleStyle.Render("Usage:"), usage)
		}
	}
	return sb.String()
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method, which shows the full chain in verbose mode.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// errorHandler renders errors returned from command handlers. ServiceErrors
// print their styled message and catalog entry; an ExitError without a cause
// is silent because its output was already written.
func (a *App) errorHandler(w io.Writer, styles fang.Styles, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		a.renderServiceError(w, svcErr)
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fang.DefaultErrorHandler(w, styles, err)
}

// renderServiceError prints the styled message followed by the issue help
// section, if any.
func (a *App) renderServiceError(w io.Writer, svcErr *ServiceError) {
	if svcErr.StyledMessage != "" {
		fmt.Fprint(w, svcErr.StyledMessage)
	} else {
		fmt.Fprintln(w, svcErr.Err.Error())
	}

	if svcErr.IssueID == 0 || !a.flags.verbose {
		return
	}

	if entry := issue.Get(svcErr.IssueID); entry != nil {
		rendered, err := entry.Render(a.glamourStyle)
		if err != nil {
			fmt.Fprintln(w, WarningStyle.Render("failed to render help: "+err.Error()))
			return
		}
		fmt.Fprint(w, rendered)
	}
}
