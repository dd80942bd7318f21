// SPDX-License-Identifier: MPL-2.0

package parse

import (
	"regexp"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/cursor"
)

var wordPattern = regexp.MustCompile(`\A\S*`)

// Word consumes the run of non-whitespace runes at the cursor. It never fails;
// at whitespace or end of input it yields "".
func Word() Parser[string] {
	return NamedFunc("Word", func(c *cursor.Cursor) (string, error) {
		return c.ReadPattern(wordPattern), nil
	})
}

// Phrase consumes a quoted phrase or, when the next rune is not a quote, a Word.
//
// A phrase opens with ' or " and ends at the next unescaped matching quote,
// which is consumed but not returned. A backslash makes the following rune
// literal. An unterminated phrase yields everything up to end of input.
func Phrase() Parser[string] {
	return NamedFunc("Phrase", func(c *cursor.Cursor) (string, error) {
		quote, ok := c.Peek()
		if !ok || (quote != '"' && quote != '\'') {
			return Word().Parse(c)
		}
		c.ReadChar()

		var sb strings.Builder
		escaped := false
		for {
			r, ok := c.ReadChar()
			if !ok {
				return sb.String(), nil
			}
			switch {
			case escaped:
				sb.WriteRune(r)
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				return sb.String(), nil
			default:
				sb.WriteRune(r)
			}
		}
	})
}

// GreedyPhrase consumes the rest of the input. It fails when nothing is left.
func GreedyPhrase() Parser[string] {
	return NamedFunc("Phrase...", func(c *cursor.Cursor) (string, error) {
		if !c.CanRead() {
			return "", NewError(c, "Expected a phrase")
		}
		return c.ReadRemaining(), nil
	})
}

// GreedyOptionalPhrase consumes the rest of the input, yielding "" at end of input.
func GreedyOptionalPhrase() Parser[string] {
	return NamedFunc("[Phrase...]", func(c *cursor.Cursor) (string, error) {
		return c.ReadRemaining(), nil
	})
}

// Pattern consumes a non-empty match of re anchored at the cursor.
// The pattern is also used as the parser's name.
func Pattern(re *regexp.Regexp) Parser[string] {
	return NamedPattern(re.String(), re)
}

// NamedPattern is Pattern with an explicit display name.
func NamedPattern(name string, re *regexp.Regexp) Parser[string] {
	anchored := regexp.MustCompile(`\A(?:` + re.String() + `)`)
	return NamedFunc(name, func(c *cursor.Cursor) (string, error) {
		got := c.ReadPattern(anchored)
		if got == "" {
			return "", NewError(c, "Expected input matching "+re.String())
		}
		return got, nil
	})
}
