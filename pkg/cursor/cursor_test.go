// SPDX-License-Identifier: MPL-2.0

package cursor

import (
	"errors"
	"regexp"
	"testing"
	"unicode"
)

func TestCursor_ResetThenPosition(t *testing.T) {
	t.Parallel()

	c := New("hello world")
	for _, pos := range []int{0, 3, 11, 5, 0} {
		c.Reset(pos)
		if got := c.Position(); got != pos {
			t.Errorf("Reset(%d): Position() = %d", pos, got)
		}
	}
}

func TestCursor_ResetOutOfRangePanics(t *testing.T) {
	t.Parallel()

	for _, pos := range []int{-1, 6} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Reset(%d) did not panic", pos)
				}
			}()
			New("hello").Reset(pos)
		}()
	}
}

func TestCursor_CopyIsIndependent(t *testing.T) {
	t.Parallel()

	c := New("abcdef")
	c.Reset(2)
	cp := c.Copy()

	if cp.Position() != 2 {
		t.Fatalf("copy position = %d, want 2", cp.Position())
	}
	if _, err := cp.ReadChars(3); err != nil {
		t.Fatalf("ReadChars: %v", err)
	}
	if c.Position() != 2 {
		t.Errorf("original moved to %d after copy advanced", c.Position())
	}
	c.Reset(0)
	if cp.Position() != 5 {
		t.Errorf("copy moved to %d after original reset", cp.Position())
	}
}

func TestCursor_CanRead(t *testing.T) {
	t.Parallel()

	c := New("ab")
	if !c.CanRead() || !c.CanReadN(2) || c.CanReadN(3) {
		t.Errorf("unexpected CanRead results at start")
	}
	c.Reset(2)
	if c.CanRead() {
		t.Errorf("CanRead() at end = true")
	}
	if !c.CanReadN(0) {
		t.Errorf("CanReadN(0) at end = false")
	}
}

func TestCursor_PeekAndReadChar(t *testing.T) {
	t.Parallel()

	c := New("xé")
	r, ok := c.Peek()
	if !ok || r != 'x' || c.Position() != 0 {
		t.Fatalf("Peek() = %q, %v at %d", r, ok, c.Position())
	}
	if r, _ := c.ReadChar(); r != 'x' {
		t.Errorf("ReadChar() = %q, want x", r)
	}
	if r, _ := c.ReadChar(); r != 'é' {
		t.Errorf("ReadChar() = %q, want é", r)
	}
	if _, ok := c.ReadChar(); ok {
		t.Errorf("ReadChar() at end reported ok")
	}
	if _, ok := c.Peek(); ok {
		t.Errorf("Peek() at end reported ok")
	}
	if c.Position() != 2 {
		t.Errorf("Position() = %d, want 2", c.Position())
	}
}

func TestCursor_ReadChars(t *testing.T) {
	t.Parallel()

	c := New("foo bar")
	got, err := c.ReadChars(3)
	if err != nil || got != "foo" {
		t.Fatalf("ReadChars(3) = %q, %v", got, err)
	}

	_, err = c.ReadChars(10)
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadChars(10) error = %v, want ErrUnexpectedEnd", err)
	}
	if c.Position() != 3 {
		t.Errorf("failed ReadChars advanced to %d", c.Position())
	}
}

func TestCursor_ReadWhile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantPos int
	}{
		{name: "stops at first non-match", input: "abc def", want: "abc", wantPos: 3},
		{name: "consumes to end", input: "abcdef", want: "abcdef", wantPos: 6},
		{name: "no match", input: " abc", want: "", wantPos: 0},
		{name: "empty input", input: "", want: "", wantPos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(tt.input)
			got := c.ReadWhile(func(r rune) bool { return !unicode.IsSpace(r) })
			if got != tt.want || c.Position() != tt.wantPos {
				t.Errorf("ReadWhile() = %q at %d, want %q at %d", got, c.Position(), tt.want, tt.wantPos)
			}
		})
	}
}

func TestCursor_ReadPattern(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`[+\-]?[0-9_]+`)

	c := New("x 200s")
	if got := c.ReadPattern(digits); got != "" || c.Position() != 0 {
		t.Errorf("ReadPattern() matched %q away from the cursor", got)
	}

	c.Reset(2)
	if got := c.ReadPattern(digits); got != "200" {
		t.Errorf("ReadPattern() = %q, want 200", got)
	}
	if c.Position() != 5 {
		t.Errorf("Position() = %d, want 5", c.Position())
	}
}

func TestCursor_ReadPatternCountsRunes(t *testing.T) {
	t.Parallel()

	c := New("ääb c")
	got := c.ReadPattern(regexp.MustCompile(`\S+`))
	if got != "ääb" || c.Position() != 3 {
		t.Errorf("ReadPattern() = %q at %d, want ääb at 3", got, c.Position())
	}
}

func TestCursor_ReadRemaining(t *testing.T) {
	t.Parallel()

	c := New("foo bar")
	c.Reset(4)
	if got := c.Remaining(); got != "bar" {
		t.Errorf("Remaining() = %q", got)
	}
	if c.Position() != 4 {
		t.Errorf("Remaining() advanced the cursor")
	}
	if got := c.ReadRemaining(); got != "bar" || c.CanRead() {
		t.Errorf("ReadRemaining() = %q, CanRead() = %v", got, c.CanRead())
	}
	if got := c.Consumed(); got != "foo bar" {
		t.Errorf("Consumed() = %q", got)
	}
}

func TestCursor_ReadPatternFromCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		pos     int
		pattern string
		want    string
		wantPos int
	}{
		{name: "after multi-byte runes", text: "äö 12x", pos: 3, pattern: `\A[0-9]+`, want: "12", wantPos: 5},
		{name: "caret matches at the cursor", text: "ab cd", pos: 3, pattern: `^cd`, want: "cd", wantPos: 5},
		{name: "word boundary at the cursor", text: "abcd", pos: 2, pattern: `\bcd`, want: "cd", wantPos: 4},
		{name: "match later is rejected", text: "a b1", pos: 1, pattern: `[0-9]`, want: "", wantPos: 1},
		{name: "at end of input", text: "ab", pos: 2, pattern: `\A.*`, want: "", wantPos: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewAt(tt.text, tt.pos)
			got := c.ReadPattern(regexp.MustCompile(tt.pattern))
			if got != tt.want || c.Position() != tt.wantPos {
				t.Errorf("ReadPattern(%q) = %q at %d, want %q at %d", tt.pattern, got, c.Position(), tt.want, tt.wantPos)
			}
		})
	}
}

func TestCursor_ReadPatternOnCopyAndZeroValue(t *testing.T) {
	t.Parallel()

	c := New("ü 7")
	c.Reset(2)
	cp := c.Copy()
	if got := cp.ReadPattern(regexp.MustCompile(`\A7`)); got != "7" {
		t.Errorf("copy ReadPattern() = %q, want 7", got)
	}
	if c.Position() != 2 {
		t.Errorf("original moved to %d", c.Position())
	}

	var zero Cursor
	if got := zero.ReadPattern(regexp.MustCompile(`\A.*`)); got != "" {
		t.Errorf("zero cursor ReadPattern() = %q", got)
	}
}
