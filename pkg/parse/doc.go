// SPDX-License-Identifier: MPL-2.0

// Package parse provides the small parser-combinator layer that command
// matching and argument parsing are built on.
//
// A Parser reads one structure from a cursor.Cursor and either returns a typed
// value or a *ParseError. Parsers make no promise about the cursor position
// after a failure. Callers that need to backtrack either snapshot the position
// themselves or wrap the parser in a Matcher, which restores the position on
// failure and reports plain success or failure.
//
// File organization:
//   - parser.go: Parser, Func, Named, AlwaysFailing
//   - errors.go: ParseError and its context window formatting
//   - combinators.go: Literal and Alternatives
//   - matcher.go: Matcher, the transactional success-or-backtrack wrapper
//   - strings.go, numbers.go: default argument parsers
package parse
