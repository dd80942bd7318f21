// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"fmt"

	"github.com/cmdtree/cmdtree/pkg/parse"
)

var (
	// ErrCommandNotFound is returned (wrapped) when no command matches the input.
	ErrCommandNotFound = errors.New("command not found")

	// ErrAbnormalResult is returned (wrapped) for unhandled abnormal results.
	ErrAbnormalResult = errors.New("abnormal command result")

	// ErrNoParsers is returned by ShiftAny when called without parsers.
	ErrNoParsers = errors.New("the parser list may not be empty")
)

type (
	// CommandNotFoundError reports input that matched no command.
	CommandNotFoundError struct {
		// Input is the unmatched text.
		Input string
		// Chain holds the node the search stopped at, for usage reporting.
		Chain *Chain
	}

	// NoSeparatorError reports a command directly followed by text without the
	// command/argument separator in between.
	NoSeparatorError struct {
		Err   *parse.ParseError
		Chain *Chain
	}

	// AbnormalResultError carries an abnormal result no handler consumed.
	AbnormalResultError struct {
		Key   AbnormalKey
		Chain *Chain
	}

	// CommandError is a domain failure raised by a command's action.
	CommandError struct {
		Message string
		Cause   error
	}
)

// Error implements the error interface.
func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("Command for '%s' not found!", e.Input)
}

// Unwrap returns ErrCommandNotFound for errors.Is checks.
func (e *CommandNotFoundError) Unwrap() error {
	return ErrCommandNotFound
}

// Usage returns the usage of the chain the search stopped at.
func (e *CommandNotFoundError) Usage() string {
	if e.Chain == nil {
		return ""
	}
	return e.Chain.BuildUsage()
}

// Error implements the error interface.
func (e *NoSeparatorError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying parse error.
func (e *NoSeparatorError) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *AbnormalResultError) Error() string {
	return fmt.Sprintf("abnormal command result %q", string(e.Key))
}

// Unwrap returns ErrAbnormalResult for errors.Is checks.
func (e *AbnormalResultError) Unwrap() error {
	return ErrAbnormalResult
}

// NewCommandError creates a CommandError with the given message.
func NewCommandError(message string) *CommandError {
	return &CommandError{Message: message}
}

// WrapCommandError creates a CommandError with a message and an underlying cause.
func WrapCommandError(message string, cause error) *CommandError {
	return &CommandError{Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Cause != nil && e.Message == "" {
		return e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the cause.
func (e *CommandError) Unwrap() error {
	return e.Cause
}
