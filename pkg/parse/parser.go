// SPDX-License-Identifier: MPL-2.0

package parse

import "github.com/cmdtree/cmdtree/pkg/cursor"

type (
	// Parser parses a single structure from the cursor.
	//
	// Parse returns a *ParseError when the expected structure is not found.
	// The cursor position after a failure is unspecified.
	Parser[T any] interface {
		Parse(c *cursor.Cursor) (T, error)
		// Name returns the display name used in usage strings, or "" if unnamed.
		Name() string
	}

	// Func adapts a plain function to an unnamed Parser.
	Func[T any] func(c *cursor.Cursor) (T, error)

	namedParser[T any] struct {
		name   string
		parser Parser[T]
	}
)

// Parse calls f(c).
func (f Func[T]) Parse(c *cursor.Cursor) (T, error) {
	return f(c)
}

// Name returns "" because plain functions carry no display name.
func (f Func[T]) Name() string {
	return ""
}

// Named attaches a display name to parser and otherwise delegates to it unchanged.
func Named[T any](name string, parser Parser[T]) Parser[T] {
	return &namedParser[T]{name: name, parser: parser}
}

// NamedFunc is shorthand for Named(name, Func[T](fn)).
func NamedFunc[T any](name string, fn func(c *cursor.Cursor) (T, error)) Parser[T] {
	return Named[T](name, Func[T](fn))
}

func (p *namedParser[T]) Parse(c *cursor.Cursor) (T, error) {
	return p.parser.Parse(c)
}

func (p *namedParser[T]) Name() string {
	return p.name
}

// AlwaysFailing returns a parser that never succeeds.
func AlwaysFailing[T any]() Parser[T] {
	return Func[T](func(c *cursor.Cursor) (T, error) {
		var zero T
		return zero, NewError(c, "I am always false")
	})
}
