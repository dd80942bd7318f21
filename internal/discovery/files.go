// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// SourceConfig indicates the file was listed in the configuration.
	SourceConfig Source = iota
	// SourceCurrentDir indicates the file was found in the working directory.
	SourceCurrentDir
)

// DefaultCommandFileNames are looked up in the working directory, in order.
// Every one that exists is loaded.
var DefaultCommandFileNames = []string{"commands.cue", "commands.toml"}

type (
	// Source represents where a command file was found.
	Source int

	// CommandFile is a located command file.
	CommandFile struct {
		// Path is the absolute path to the file.
		Path string
		// Source indicates where the file was found.
		Source Source
	}
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceConfig:
		return "config"
	case SourceCurrentDir:
		return "current directory"
	default:
		return "unknown"
	}
}

// FindCommandFiles resolves the command files to load: every configured path
// (relative paths are taken relative to dir), followed by the default file
// names present in dir. Paths are deduplicated. Configured files that do not
// exist produce an error diagnostic instead of failing the lookup.
func FindCommandFiles(dir string, configured []string) ([]CommandFile, []Diagnostic) {
	var (
		files []CommandFile
		diags []Diagnostic
		seen  = make(map[string]bool)
	)

	add := func(path string, source Source) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, CommandFile{Path: path, Source: source})
	}

	for _, p := range configured {
		abs := absolute(dir, p)
		if _, err := os.Stat(abs); err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeCommandFileMissing,
				Message:  fmt.Sprintf("configured command file %s cannot be read", p),
				Path:     abs,
				Cause:    err,
			})
			continue
		}
		add(abs, SourceConfig)
	}

	for _, name := range DefaultCommandFileNames {
		abs := absolute(dir, name)
		info, err := os.Stat(abs)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
			continue
		}
		add(abs, SourceCurrentDir)
	}

	return files, diags
}

func absolute(dir, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
