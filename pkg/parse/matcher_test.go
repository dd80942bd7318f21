// SPDX-License-Identifier: MPL-2.0

package parse

import (
	"testing"

	"github.com/cmdtree/cmdtree/pkg/cursor"
)

func TestMatcher_BacktracksOnFailure(t *testing.T) {
	t.Parallel()

	m := Wrap(Literal("foo"))
	c := cursor.New("fob")
	if m.Match(c) {
		t.Fatal("Match() = true on mismatched input")
	}
	if c.Position() != 0 {
		t.Errorf("failed Match left cursor at %d", c.Position())
	}
}

func TestMatcher_KeepsPositionOnSuccess(t *testing.T) {
	t.Parallel()

	m := Wrap(Literal("foo"))
	c := cursor.New("foo bar")
	if !m.Match(c) {
		t.Fatal("Match() = false")
	}
	if c.Position() != 3 {
		t.Errorf("Position() = %d, want 3", c.Position())
	}
	if m.Name() != "foo" {
		t.Errorf("Name() = %q", m.Name())
	}
}

func TestMatcher_ParseNeverErrors(t *testing.T) {
	t.Parallel()

	var p Parser[bool] = Wrap(AlwaysFailing[int]())
	ok, err := p.Parse(cursor.New("x"))
	if ok || err != nil {
		t.Errorf("Parse() = %v, %v; want false, nil", ok, err)
	}
}

func TestAlwaysTrue(t *testing.T) {
	t.Parallel()

	c := cursor.New("abc")
	if !AlwaysTrue().Match(c) {
		t.Error("AlwaysTrue().Match() = false")
	}
	if c.Position() != 0 {
		t.Errorf("AlwaysTrue consumed input")
	}
}
