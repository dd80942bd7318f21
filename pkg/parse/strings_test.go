// SPDX-License-Identifier: MPL-2.0

package parse

import (
	"regexp"
	"testing"

	"github.com/cmdtree/cmdtree/pkg/cursor"
)

func TestWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "Hello you", want: "Hello"},
		{input: "Hello_you", want: "Hello_you"},
		{input: "Hello!", want: "Hello!"},
		{input: "Hello[", want: "Hello["},
		{input: "Hello\tMy", want: "Hello"},
		{input: "Hello\nMy", want: "Hello"},
		{input: " leading", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Word().Parse(cursor.New(tt.input))
			if err != nil || got != tt.want {
				t.Errorf("Word() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare word", input: "Hello my friend", want: "Hello"},
		{name: "double quoted", input: `"Hello my friend"`, want: "Hello my friend"},
		{name: "single quoted", input: `'Hello my friend' rest`, want: "Hello my friend"},
		{name: "unterminated", input: `"Hello my friend`, want: "Hello my friend"},
		{name: "trailing quote only", input: `Hello my friend"`, want: "Hello"},
		{name: "tab inside quotes", input: "\"Hello\tmy friend\"", want: "Hello\tmy friend"},
		{name: "escaped quote", input: `"say \"hi\""`, want: `say "hi"`},
		{name: "escaped backslash", input: `'a\\b'`, want: `a\b`},
		{name: "other quote kept", input: `"it's"`, want: "it's"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Phrase().Parse(cursor.New(tt.input))
			if err != nil || got != tt.want {
				t.Errorf("Phrase() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestPhrase_ConsumesClosingQuote(t *testing.T) {
	t.Parallel()

	c := cursor.New(`"a b" c`)
	if _, err := Phrase().Parse(c); err != nil {
		t.Fatal(err)
	}
	if c.Remaining() != " c" {
		t.Errorf("Remaining() = %q, want \" c\"", c.Remaining())
	}
}

func TestGreedyPhrase(t *testing.T) {
	t.Parallel()

	c := cursor.NewAt("cmd all the rest", 4)
	got, err := GreedyPhrase().Parse(c)
	if err != nil || got != "all the rest" || c.CanRead() {
		t.Errorf("GreedyPhrase() = %q, %v", got, err)
	}

	if _, err := GreedyPhrase().Parse(cursor.NewAt("cmd", 3)); err == nil {
		t.Error("GreedyPhrase() succeeded at end of input")
	}
}

func TestGreedyOptionalPhrase(t *testing.T) {
	t.Parallel()

	got, err := GreedyOptionalPhrase().Parse(cursor.NewAt("cmd", 3))
	if err != nil || got != "" {
		t.Errorf("GreedyOptionalPhrase() = %q, %v", got, err)
	}
}

func TestPattern(t *testing.T) {
	t.Parallel()

	p := Pattern(regexp.MustCompile(`[a-f0-9]+`))
	if p.Name() != "[a-f0-9]+" {
		t.Errorf("Name() = %q", p.Name())
	}

	c := cursor.New("beef cafe")
	got, err := p.Parse(c)
	if err != nil || got != "beef" {
		t.Errorf("Parse() = %q, %v", got, err)
	}

	if _, err := p.Parse(cursor.New("xyz")); err == nil {
		t.Error("Parse() matched non-hex input")
	}
	if _, err := p.Parse(cursor.New("zbeef")); err == nil {
		t.Error("Parse() matched away from the cursor")
	}
}
