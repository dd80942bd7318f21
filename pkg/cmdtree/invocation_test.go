// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"context"
	"errors"
	"testing"

	"github.com/cmdtree/cmdtree/pkg/cursor"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

func newInvocation(args string) *Invocation {
	return &Invocation{Cursor: cursor.New(args), Chain: NewChain(NewRoot())}
}

func TestShift_SkipsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	inv := newInvocation("one   two")
	first, err := Shift(inv, parse.Word())
	if err != nil || first != "one" {
		t.Fatalf("Shift() = %q, %v", first, err)
	}
	if inv.Remaining() != "two" {
		t.Errorf("Remaining() = %q, want two", inv.Remaining())
	}
}

func TestShift_PropagatesParseError(t *testing.T) {
	t.Parallel()

	inv := newInvocation("abc")
	_, err := Shift(inv, parse.Integer())
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("Shift() error = %v, want parse error", err)
	}
}

func TestShiftAny(t *testing.T) {
	t.Parallel()

	inv := newInvocation("beta rest")
	got, err := ShiftAny(inv, parse.Literal("alpha"), parse.Literal("beta"))
	if err != nil || got != "beta" {
		t.Fatalf("ShiftAny() = %q, %v", got, err)
	}
	if inv.Remaining() != "rest" {
		t.Errorf("Remaining() = %q", inv.Remaining())
	}
}

func TestShiftAny_ReturnsLastFailure(t *testing.T) {
	t.Parallel()

	inv := newInvocation("gamma")
	_, err := ShiftAny(inv, parse.Literal("alpha"), parse.Literal("beta"))
	var pe *parse.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("ShiftAny() error = %v", err)
	}
	if pe.Detail != "Expected 'beta'" {
		t.Errorf("Detail = %q, want the last parser's failure", pe.Detail)
	}
	if inv.Cursor.Position() != 0 {
		t.Errorf("failed ShiftAny left cursor at %d", inv.Cursor.Position())
	}
}

func TestShiftAny_Empty(t *testing.T) {
	t.Parallel()

	_, err := ShiftAny[string](newInvocation("x"))
	if !errors.Is(err, ErrNoParsers) {
		t.Errorf("ShiftAny() error = %v, want ErrNoParsers", err)
	}
}

func TestInvocation_ContextDefaults(t *testing.T) {
	t.Parallel()

	if newInvocation("").Context() == nil {
		t.Error("Context() = nil")
	}

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	inv := &Invocation{ctx: ctx}
	if inv.Context().Value(key{}) != "v" {
		t.Error("Context() did not return the execute context")
	}
}

func TestResult(t *testing.T) {
	t.Parallel()

	if Fail(nil).Kind != ResultOK {
		t.Error("Fail(nil) is not OK")
	}
	boom := errors.New("boom")
	if r := Fail(boom); r.Kind != ResultError || r.Err != boom {
		t.Errorf("Fail(boom) = %v", r)
	}
	if r := Abnormal(KeyShowUsage); r.String() != "abnormal: usage" {
		t.Errorf("String() = %q", r.String())
	}
}
