// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

type (
	// DecodeError lists every problem found in one document.
	DecodeError struct {
		// File names the document.
		File string
		// Problems holds one entry per CUE error, in reporting order.
		Problems []Problem
		// cause is set when the error did not come from CUE.
		cause error
	}

	// Problem is a single validation failure.
	Problem struct {
		// Path is the JSON-style path of the offending field
		// (e.g. "commands[0].head.kind"), empty for document-level errors.
		Path string
		// Message is the CUE error message without the path prefix.
		Message string
	}
)

// Error formats the problems as "<file>: <path>: <message>", one per line
// when there are several.
func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.File, e.cause)
	}
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	if len(lines) == 1 {
		return fmt.Sprintf("%s: %s", e.File, lines[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(lines, "\n  "))
}

// Unwrap returns the non-CUE cause, if any.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// FormatError converts err into a *DecodeError whose problems carry
// JSON-style paths. It returns nil for a nil error.
func FormatError(err error, file string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return &DecodeError{File: file, cause: err}
	}

	decodeErr := &DecodeError{File: file}
	for _, e := range cueErrors {
		path := formatPath(errors.Path(e))
		msg := e.Error()
		// CUE sometimes repeats the path at the start of the message.
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		decodeErr.Problems = append(decodeErr.Problems, Problem{Path: path, Message: msg})
	}
	return decodeErr
}

// formatPath turns a CUE path such as ["commands", "0", "head"] into
// "commands[0].head".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			sb.WriteString("[" + part + "]")
		case i > 0:
			sb.WriteString("." + part)
		default:
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error when data is larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}
