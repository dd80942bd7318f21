// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"context"
	"io"
	"unicode"

	"github.com/cmdtree/cmdtree/pkg/cursor"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

// Invocation is what an Action receives: the cursor positioned at its
// arguments, the resolved node and chain, and the caller's request value.
type Invocation struct {
	// Cursor is positioned at the first argument rune.
	Cursor *cursor.Cursor
	// Node is the command being run, the chain's final node.
	Node *Node
	// Chain is the full match path.
	Chain *Chain
	// Request is the value passed to Executor.Execute, e.g. the sender of a chat message.
	Request any

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ctx context.Context
}

// Context returns the context of the Execute call.
func (inv *Invocation) Context() context.Context {
	if inv.ctx == nil {
		return context.Background()
	}
	return inv.ctx
}

// Remaining returns the unparsed argument text without consuming it.
func (inv *Invocation) Remaining() string {
	return inv.Cursor.Remaining()
}

// Usage returns the usage string of the invocation's chain.
func (inv *Invocation) Usage() string {
	return inv.Chain.BuildUsage()
}

// Shift applies p to the remaining arguments and then skips any whitespace
// after the parsed value. Parse failures are returned unchanged.
func Shift[T any](inv *Invocation, p parse.Parser[T]) (T, error) {
	v, err := p.Parse(inv.Cursor)
	if err != nil {
		var zero T
		return zero, err
	}
	inv.Cursor.ReadWhile(unicode.IsSpace)
	return v, nil
}

// ShiftAny tries each parser in order from the same position and returns the
// first success. When all fail it returns the last failure and leaves the
// cursor where it started. It returns ErrNoParsers when ps is empty.
func ShiftAny[T any](inv *Invocation, ps ...parse.Parser[T]) (T, error) {
	var zero T
	if len(ps) == 0 {
		return zero, ErrNoParsers
	}

	start := inv.Cursor.Position()
	var lastErr error
	for _, p := range ps {
		inv.Cursor.Reset(start)
		v, err := Shift(inv, p)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	inv.Cursor.Reset(start)
	return zero, lastErr
}
