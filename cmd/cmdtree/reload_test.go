// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/cmdtree/cmdtree/internal/discovery"
)

func TestReloadPatterns(t *testing.T) {
	t.Parallel()

	dir := filepath.FromSlash("/work")
	files := []discovery.CommandFile{
		{Path: filepath.FromSlash("/work/commands.cue"), Source: discovery.SourceCurrentDir},
		{Path: filepath.FromSlash("/work/tools/x[1].toml"), Source: discovery.SourceConfig},
		{Path: filepath.FromSlash("/elsewhere/shared.cue"), Source: discovery.SourceConfig},
	}

	want := []string{"config.cue", "commands.cue", "commands.toml", `tools/x\[1\].toml`}
	if diff := cmp.Diff(want, reloadPatterns(dir, files)); diff != "" {
		t.Errorf("reloadPatterns() mismatch (-want +got):\n%s", diff)
	}
}

func writeCommands(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "commands.cue"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReload(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "", nil)
	s, err := app.openSession(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	live := newLiveSession(s)

	writeCommands(t, app.workDir, `commands: [{name: "pong", script: "echo pong"}]`)
	app.reload(t.Context(), live, []string{"commands.cue"})

	if live.Load() == s {
		t.Fatal("session was not replaced")
	}
	if !strings.Contains(app.stderr.String(), "Reloaded commands after changes to commands.cue") {
		t.Errorf("stderr = %q", app.stderr.String())
	}
	if err := live.Load().executor.Execute(t.Context(), "pong", nil); err != nil {
		t.Fatalf("Execute(pong) error = %v", err)
	}
	if got := app.stdout.String(); got != "pong\n" {
		t.Errorf("stdout = %q, want %q", got, "pong\n")
	}
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "", nil)
	s, err := app.openSession(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	live := newLiveSession(s)

	writeCommands(t, app.workDir, `commands: [{name: "orphan"}]`)
	app.reload(t.Context(), live, []string{"commands.cue"})

	if live.Load() != s {
		t.Error("session replaced after a failed reload")
	}
	stderr := app.stderr.String()
	for _, want := range []string{"failed to load command file", "Reload failed, keeping the previous commands"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestStartReload(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "", nil)
	s, err := app.openSession(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	live := newLiveSession(s)

	stop, err := app.startReload(t.Context(), live)
	if err != nil {
		t.Fatalf("startReload() error = %v", err)
	}

	writeCommands(t, app.workDir, `commands: [{name: "pong", script: "echo pong"}]`)

	deadline := time.Now().Add(5 * time.Second)
	for live.Load() == s && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	stop()

	if live.Load() == s {
		t.Fatal("session was not reloaded after the command file changed")
	}
	if got := live.Load().root.Node().Usage(); !strings.Contains(got, "pong") {
		t.Errorf("Usage() = %q, want it to mention pong", got)
	}
}
