// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"

	// CodeParentNotFound marks a command whose declared parent matched nothing.
	// The command is attached under the root instead.
	CodeParentNotFound = "parent_not_found"
	// CodeDuplicateName marks a name registered more than once. Parent lookups
	// resolve to the first registration with that name.
	CodeDuplicateName = "duplicate_name"
	// CodeCommandFileMissing marks a configured command file that does not exist.
	CodeCommandFileMissing = "command_file_missing"
)

type (
	// Severity is the level of a Diagnostic.
	Severity string

	// Diagnostic is a problem found while locating files or assembling the
	// tree that did not stop the process. Callers decide how to render it.
	Diagnostic struct {
		Severity Severity
		// Code is one of the Code* constants.
		Code    string
		Message string
		// Command and Path are set when the problem concerns a specific
		// registration or file.
		Command string
		Path    string
		Cause   error
	}
)
