// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "commands.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with file", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("some error")
		err := FormatError(cause, "commands.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if got, want := err.Error(), "commands.cue: some error"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is(err, cause) = false")
		}
	})
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *DecodeError
		expected string
	}{
		{
			name: "single problem with path",
			err: &DecodeError{
				File:     "commands.cue",
				Problems: []Problem{{Path: "commands[0].name", Message: "expected string, got int"}},
			},
			expected: "commands.cue: commands[0].name: expected string, got int",
		},
		{
			name: "single problem without path",
			err: &DecodeError{
				File:     "config.cue",
				Problems: []Problem{{Message: "syntax error"}},
			},
			expected: "config.cue: syntax error",
		},
		{
			name: "several problems",
			err: &DecodeError{
				File: "commands.toml",
				Problems: []Problem{
					{Path: "commands[0].head.kind", Message: "invalid value"},
					{Path: "commands[1].script", Message: "incomplete value"},
				},
			},
			expected: "commands.toml: validation failed:\n  commands[0].head.kind: invalid value\n  commands[1].script: incomplete value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
			if tt.err.Unwrap() != nil {
				t.Error("Unwrap() should be nil for CUE problems")
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"argument_separator"}, expected: "argument_separator"},
		{name: "nested path", path: []string{"ui", "verbose"}, expected: "ui.verbose"},
		{name: "array index", path: []string{"commands", "0", "script"}, expected: "commands[0].script"},
		{name: "nested indices", path: []string{"commands", "2", "head", "kind"}, expected: "commands[2].head.kind"},
		{name: "leading number is not an index", path: []string{"0", "name"}, expected: "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize([]byte("hello"), 100, "commands.cue"); err != nil {
		t.Errorf("small data: %v", err)
	}
	if err := CheckFileSize(make([]byte, 100), 100, "commands.cue"); err != nil {
		t.Errorf("data at the limit: %v", err)
	}
	if err := CheckFileSize(nil, 100, "commands.cue"); err != nil {
		t.Errorf("empty data: %v", err)
	}

	err := CheckFileSize(make([]byte, 101), 100, "commands.cue")
	if err == nil {
		t.Fatal("expected error for data over the limit")
	}
	for _, want := range []string{"commands.cue", "101", "100"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should contain %q", err, want)
		}
	}
}
