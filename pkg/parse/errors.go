// SPDX-License-Identifier: MPL-2.0

package parse

import (
	"errors"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/cursor"
)

// ContextLength is the number of runes before the failure position shown in
// a ParseError message.
const ContextLength = 10

// hereMarker points at the failure position in formatted messages.
const hereMarker = "<---[HERE]"

// ErrParse is the sentinel wrapped by every *ParseError, for errors.Is checks.
var ErrParse = errors.New("parse failed")

// ParseError reports that a parser could not consume the expected structure.
// It is always recoverable: alternatives and ShiftAny simply try the next option.
type ParseError struct {
	// Detail is a short description of what was expected. May be empty.
	Detail string
	// Context is the input window that ends at Position.
	Context string
	// Position is the cursor position when the failure was raised.
	Position int
	// Cause is an underlying error such as a strconv failure (optional).
	Cause error
}

// NewError creates a ParseError at the cursor's current position.
func NewError(c *cursor.Cursor, detail string) *ParseError {
	return WrapError(c, detail, nil)
}

// WrapError creates a ParseError at the cursor's current position with an underlying cause.
func WrapError(c *cursor.Cursor, detail string, cause error) *ParseError {
	pos := c.Position()
	start := max(pos-ContextLength, 0)
	consumed := []rune(c.Consumed())

	return &ParseError{
		Detail:   detail,
		Context:  string(consumed[start:pos]),
		Position: pos,
		Cause:    cause,
	}
}

// Error formats the failure as "<detail> at <context><---[HERE]".
// A blank detail is left out entirely.
func (e *ParseError) Error() string {
	if strings.TrimSpace(e.Detail) == "" {
		return e.Context + hereMarker
	}
	return e.Detail + " at " + e.Context + hereMarker
}

// Unwrap returns the cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
