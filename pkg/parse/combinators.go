// SPDX-License-Identifier: MPL-2.0

package parse

import (
	"errors"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/cursor"
)

// Literal returns a parser that consumes exactly text and yields it.
// The parser's name is text itself, which is how keywords show up in usage.
func Literal(text string) Parser[string] {
	length := len([]rune(text))
	return NamedFunc(text, func(c *cursor.Cursor) (string, error) {
		got, err := c.ReadChars(length)
		if err != nil || got != text {
			return "", NewError(c, "Expected '"+text+"'")
		}
		return got, nil
	})
}

// Alternatives returns a parser that tries each option in order, restoring the
// cursor before every attempt, and yields the first success.
//
// Its name is "<a|b|...>" built from the named options. When every option
// fails the error detail is "Expected one of <a|b|...>"; with no options at
// all it is "No option given".
func Alternatives[T any](options ...Parser[T]) Parser[T] {
	name := alternativesName(options)
	return NamedFunc(name, func(c *cursor.Cursor) (T, error) {
		var zero T
		if len(options) == 0 {
			return zero, NewError(c, "No option given")
		}

		start := c.Position()
		var errs []error
		for _, option := range options {
			c.Reset(start)
			v, err := option.Parse(c)
			if err == nil {
				return v, nil
			}
			errs = append(errs, err)
		}

		c.Reset(start)
		return zero, WrapError(c, "Expected one of "+name, errors.Join(errs...))
	})
}

func alternativesName[T any](options []Parser[T]) string {
	names := make([]string, 0, len(options))
	for _, option := range options {
		if n := option.Name(); n != "" {
			names = append(names, n)
		}
	}
	return "<" + strings.Join(names, "|") + ">"
}
