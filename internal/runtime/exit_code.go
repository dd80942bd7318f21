// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrScriptFailed is the sentinel wrapped by every *ExitError.
var ErrScriptFailed = errors.New("script failed")

type (
	// ExitCode is a script exit status. The zero value means success.
	ExitCode int

	// ExitError reports a script that finished with a non-zero status.
	ExitError struct {
		// Command is the chain of the command whose script failed.
		Command string
		// Code is the exit status.
		Code ExitCode
	}
)

// IsSuccess reports whether the code indicates success.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal representation of the code.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %s", e.Command, e.Code)
}

// Unwrap returns ErrScriptFailed.
func (e *ExitError) Unwrap() error { return ErrScriptFailed }
