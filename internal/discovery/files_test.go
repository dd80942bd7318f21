// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindCommandFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("commands: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	extra := write("extra/more.cue")
	local := write("commands.cue")

	files, diags := FindCommandFiles(dir, []string{"extra/more.cue", "missing.toml", local})

	if len(files) != 2 {
		t.Fatalf("files = %+v, want 2 entries", files)
	}
	if files[0].Path != extra || files[0].Source != SourceConfig {
		t.Errorf("files[0] = %+v", files[0])
	}
	// Listed in config and present in the directory: reported once, from config.
	if files[1].Path != local || files[1].Source != SourceConfig {
		t.Errorf("files[1] = %+v", files[1])
	}

	if len(diags) != 1 || diags[0].Code != CodeCommandFileMissing || diags[0].Severity != SeverityError {
		t.Errorf("diagnostics = %+v", diags)
	}
}

func TestFindCommandFiles_DefaultsOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "commands.toml"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "commands.cue"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, diags := FindCommandFiles(dir, nil)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %+v", diags)
	}
	if len(files) != 1 || filepath.Base(files[0].Path) != "commands.toml" || files[0].Source != SourceCurrentDir {
		t.Errorf("files = %+v", files)
	}
	if files[0].Source.String() != "current directory" {
		t.Errorf("Source.String() = %q", files[0].Source.String())
	}
}
