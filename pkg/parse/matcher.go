// SPDX-License-Identifier: MPL-2.0

package parse

import "github.com/cmdtree/cmdtree/pkg/cursor"

// Matcher turns any parser into a success-or-backtrack check.
//
// Match reports whether the wrapped parser succeeded. On failure the cursor is
// restored to where it was before the attempt; on success it stays where the
// wrapped parser left it. Matcher also satisfies Parser[bool] and never
// returns an error from Parse.
type Matcher struct {
	name  string
	parse func(c *cursor.Cursor) error
}

// Wrap builds a Matcher around p, keeping p's name.
func Wrap[T any](p Parser[T]) *Matcher {
	return &Matcher{
		name: p.Name(),
		parse: func(c *cursor.Cursor) error {
			_, err := p.Parse(c)
			return err
		},
	}
}

// AlwaysTrue returns a Matcher that succeeds without consuming input.
func AlwaysTrue() *Matcher {
	return &Matcher{parse: func(*cursor.Cursor) error { return nil }}
}

// Match runs the wrapped parser and backtracks on failure.
func (m *Matcher) Match(c *cursor.Cursor) bool {
	start := c.Position()
	if err := m.parse(c); err != nil {
		c.Reset(start)
		return false
	}
	return true
}

// Parse implements Parser[bool].
func (m *Matcher) Parse(c *cursor.Cursor) (bool, error) {
	return m.Match(c), nil
}

// Name returns the wrapped parser's name.
func (m *Matcher) Name() string {
	return m.name
}
