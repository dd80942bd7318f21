// SPDX-License-Identifier: MPL-2.0

// Package cursor provides a position-tracking view over an input string.
//
// All parsing in cmdtree reads through a Cursor. The text never changes after
// construction; only the read position moves. Positions count runes, not bytes,
// so multi-byte input behaves the same as ASCII input.
package cursor

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// ErrUnexpectedEnd is returned when a read asks for more runes than remain.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// Cursor is an immutable text buffer with a mutable read position.
// The zero value is an empty cursor positioned at 0.
type Cursor struct {
	text  string
	runes []rune
	// offsets[i] is the byte offset of rune i in text; len(runes)+1 entries.
	offsets  []int
	position int
}

// New creates a cursor over text positioned at the start.
func New(text string) *Cursor {
	return NewAt(text, 0)
}

// NewAt creates a cursor over text positioned at pos.
// It panics if pos is outside [0, len].
func NewAt(text string, pos int) *Cursor {
	runes := []rune(text)
	offsets := make([]int, 0, len(runes)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	c := &Cursor{text: text, runes: runes, offsets: offsets}
	c.Reset(pos)
	return c
}

// Text returns the full underlying input.
func (c *Cursor) Text() string {
	return c.text
}

// Len returns the input length in runes.
func (c *Cursor) Len() int {
	return len(c.runes)
}

// Position returns the current read position.
func (c *Cursor) Position() int {
	return c.position
}

// Reset moves the read position to pos.
// A position outside [0, Len()] is a programming error and panics.
func (c *Cursor) Reset(pos int) {
	if pos < 0 || pos > len(c.runes) {
		panic(fmt.Sprintf("cursor: reset to %d outside [0, %d]", pos, len(c.runes)))
	}
	c.position = pos
}

// Copy returns an independent cursor over the same text at the same position.
func (c *Cursor) Copy() *Cursor {
	return &Cursor{text: c.text, runes: c.runes, offsets: c.offsets, position: c.position}
}

// CanRead reports whether at least one rune remains.
func (c *Cursor) CanRead() bool {
	return c.position < len(c.runes)
}

// CanReadN reports whether at least n runes remain.
func (c *Cursor) CanReadN(n int) bool {
	return c.position+n <= len(c.runes)
}

// Peek returns the next rune without consuming it.
// ok is false when the input is exhausted.
func (c *Cursor) Peek() (r rune, ok bool) {
	if !c.CanRead() {
		return 0, false
	}
	return c.runes[c.position], true
}

// PeekN returns up to n runes without consuming them.
func (c *Cursor) PeekN(n int) string {
	end := min(c.position+n, len(c.runes))
	return string(c.runes[c.position:end])
}

// ReadChar consumes and returns one rune.
// ok is false, and nothing is consumed, when the input is exhausted.
func (c *Cursor) ReadChar() (r rune, ok bool) {
	if !c.CanRead() {
		return 0, false
	}
	r = c.runes[c.position]
	c.position++
	return r, true
}

// ReadChars consumes exactly n runes.
// When fewer than n runes remain it returns ErrUnexpectedEnd and does not advance.
func (c *Cursor) ReadChars(n int) (string, error) {
	if n < 0 || !c.CanReadN(n) {
		return "", fmt.Errorf("read %d chars at %d: %w", n, c.position, ErrUnexpectedEnd)
	}
	start := c.position
	c.position += n
	return string(c.runes[start:c.position]), nil
}

// ReadWhile consumes the longest prefix whose runes all satisfy pred and
// leaves the cursor on the first rune that does not.
func (c *Cursor) ReadWhile(pred func(rune) bool) string {
	start := c.position
	for c.position < len(c.runes) && pred(c.runes[c.position]) {
		c.position++
	}
	return string(c.runes[start:c.position])
}

// ReadPattern consumes a match of re that starts at the current position.
// If re does not match exactly here, it returns "" and does not advance.
//
// re only sees the text from the cursor on: ^, \A and \b treat the cursor as
// the start of the input. Patterns starting with \A cost time proportional
// to the match; unanchored ones search the whole remainder.
func (c *Cursor) ReadPattern(re *regexp.Regexp) string {
	rest := c.text[c.byteOffset():]
	loc := re.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return ""
	}
	matched := rest[:loc[1]]
	c.position += utf8.RuneCountInString(matched)
	return matched
}

func (c *Cursor) byteOffset() int {
	if c.offsets == nil {
		return 0
	}
	return c.offsets[c.position]
}

// ReadRemaining consumes and returns everything after the current position.
func (c *Cursor) ReadRemaining() string {
	rest := c.Remaining()
	c.position = len(c.runes)
	return rest
}

// Remaining returns everything after the current position without consuming it.
func (c *Cursor) Remaining() string {
	return string(c.runes[c.position:])
}

// Consumed returns the text before the current position.
func (c *Cursor) Consumed() string {
	return string(c.runes[:c.position])
}

// String implements fmt.Stringer for debugging output.
func (c *Cursor) String() string {
	return fmt.Sprintf("%s|%s", c.Consumed(), c.Remaining())
}
