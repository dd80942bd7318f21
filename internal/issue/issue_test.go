// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	got := Get(CommandNotFoundID)
	if got == nil {
		t.Fatal("Get(CommandNotFoundID) returned nil")
	}
	if got.ID() != CommandNotFoundID || got.Title() != "Command not found" {
		t.Errorf("Get() = %d %q", got.ID(), got.Title())
	}
	if Get(ID(999)) != nil {
		t.Error("Get(unknown) should be nil")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != int(ScriptFailedID) {
		t.Fatalf("Values() has %d issues, want %d", len(values), ScriptFailedID)
	}
	for i, v := range values {
		if v.ID() != ID(i+1) {
			t.Errorf("Values()[%d].ID() = %d, want %d", i, v.ID(), i+1)
		}
		if v.Title() == "" || strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no content", v.ID())
		}
	}
}

// Render tests replace the glamour renderer and must not run in parallel.
func TestIssue_Render(t *testing.T) {
	original := render
	defer func() { render = original }()

	var gotStyle string
	render = func(in, style string) (string, error) {
		gotStyle = style
		return in, nil
	}

	rendered, err := Get(DependencyCycleID).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if gotStyle != "notty" {
		t.Errorf("style = %q", gotStyle)
	}
	if !strings.HasPrefix(rendered, "# Command cycle detected\n") {
		t.Errorf("Render() should start with the title, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "cmdtree validate") {
		t.Errorf("Render() missing body, got:\n%s", rendered)
	}
}

func TestAllIssuesRenderWithGlamour(t *testing.T) {
	t.Parallel()

	for _, v := range Values() {
		out, err := v.Render("notty")
		if err != nil {
			t.Errorf("issue %d: Render() error = %v", v.ID(), err)
			continue
		}
		if !strings.Contains(out, v.Title()) {
			t.Errorf("issue %d: rendered output lacks the title %q", v.ID(), v.Title())
		}
	}
}
