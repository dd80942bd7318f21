// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func startWatcher(t *testing.T, cfg Config) (*Watcher, <-chan []string) {
	t.Helper()

	changes := make(chan []string, 16)
	cfg.OnChange = func(_ context.Context, changed []string) error {
		changes <- changed
		return nil
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = 50 * time.Millisecond
	}
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("Run() error: %v", err)
		}
	})
	return w, changes
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func awaitChange(t *testing.T, changes <-chan []string) []string {
	t.Helper()
	select {
	case changed := <-changes:
		return changed
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
		return nil
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, changes := startWatcher(t, Config{BaseDir: dir, Debounce: 150 * time.Millisecond})

	for _, name := range []string{"c.cue", "a.cue", "b.cue"} {
		writeFile(t, filepath.Join(dir, name), "x")
		time.Sleep(10 * time.Millisecond)
	}

	got := awaitChange(t, changes)
	if diff := cmp.Diff([]string{"a.cue", "b.cue", "c.cue"}, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}

	select {
	case extra := <-changes:
		t.Errorf("unexpected second callback: %v", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherPatternsFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, changes := startWatcher(t, Config{
		BaseDir:  dir,
		Patterns: []string{"commands.cue", "**/*.toml"},
	})

	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	writeFile(t, filepath.Join(dir, "commands.cue"), "x")

	got := awaitChange(t, changes)
	if diff := cmp.Diff([]string{"commands.cue"}, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}
}

func TestWatcherIgnore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, changes := startWatcher(t, Config{BaseDir: dir, Ignore: []string{"**/*.log"}})

	writeFile(t, filepath.Join(dir, "run.log"), "x")
	writeFile(t, filepath.Join(dir, "commands.toml"), "x")

	got := awaitChange(t, changes)
	if diff := cmp.Diff([]string{"commands.toml"}, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}
}

func TestWatcherNewSubdirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, changes := startWatcher(t, Config{BaseDir: dir, Patterns: []string{"**/*.cue"}})

	sub := filepath.Join(dir, "extra")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Give the event loop a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(sub, "more.cue"), "x")

	got := awaitChange(t, changes)
	if diff := cmp.Diff([]string{"extra/more.cue"}, got); diff != "" {
		t.Errorf("changed paths mismatch (-want +got):\n%s", diff)
	}
}

func TestWatcherRunTwice(t *testing.T) {
	t.Parallel()

	w, _ := startWatcher(t, Config{BaseDir: t.TempDir()})
	// Wait until the first Run has claimed the watcher.
	for !w.started.Load() {
		time.Sleep(time.Millisecond)
	}
	if err := w.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() = %v, want ErrAlreadyRunning", err)
	}
}

func TestNewInvalidPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "watch pattern", cfg: Config{Patterns: []string{"[unclosed"}}},
		{name: "ignore pattern", cfg: Config{Ignore: []string{"{a,b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.cfg.BaseDir = t.TempDir()
			if _, err := New(tt.cfg); err == nil {
				t.Fatal("New() error = nil, want invalid pattern error")
			}
		})
	}
}

func TestNewMissingBaseDir(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{BaseDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatal("New() error = nil, want error for missing directory")
	}
}

func TestDefaultIgnores(t *testing.T) {
	t.Parallel()

	w := &Watcher{ignores: defaultIgnores}
	tests := []struct {
		rel  string
		want bool
	}{
		{rel: ".git/HEAD", want: true},
		{rel: "sub/.git/index", want: true},
		{rel: "web/node_modules/x/commands.cue", want: true},
		{rel: "commands.cue.swp", want: true},
		{rel: "commands.cue~", want: true},
		{rel: "commands.cue", want: false},
		{rel: "tools/commands.toml", want: false},
	}
	for _, tt := range tests {
		if got := w.isIgnored(tt.rel); got != tt.want {
			t.Errorf("isIgnored(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}
