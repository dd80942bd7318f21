// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"garbage", false, true},
		{"AUTO", false, true},
		{"Dark", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	if got := ColorScheme("").GlamourStyle(); got != "auto" {
		t.Errorf("empty scheme style = %q, want auto", got)
	}
	if got := ColorSchemeDark.GlamourStyle(); got != "dark" {
		t.Errorf("dark scheme style = %q", got)
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("default config invalid: %v", errs)
	}

	cfg := DefaultConfig()
	cfg.ArgumentSeparator = ""
	cfg.CommandSeparator = ""
	cfg.UI.ColorScheme = "neon"
	cfg.REPL.ExitWord = ""

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("IsValid() = true for a broken config")
	}
	if len(errs) != 1 {
		t.Fatalf("IsValid() returned %d errors, want 1 aggregate", len(errs))
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("error is %T, want *InvalidConfigError", errs[0])
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("FieldErrors = %v, want 4 entries", cfgErr.FieldErrors)
	}
	for _, target := range []error{ErrInvalidConfig, ErrInvalidSeparator, ErrInvalidColorScheme} {
		if !errors.Is(errs[0], target) {
			t.Errorf("errors.Is(err, %v) = false", target)
		}
	}

	var sepErr *InvalidSeparatorError
	if !errors.As(errs[0], &sepErr) || sepErr.Field != "argument_separator" {
		t.Errorf("first separator error = %v", sepErr)
	}
}

func TestInvalidConfigError_Error(t *testing.T) {
	t.Parallel()

	single := &InvalidConfigError{FieldErrors: []error{&InvalidSeparatorError{Field: "command_separator"}}}
	if want := "invalid config: command_separator must not be empty"; single.Error() != want {
		t.Errorf("Error() = %q, want %q", single.Error(), want)
	}

	multi := &InvalidConfigError{FieldErrors: []error{
		&InvalidSeparatorError{Field: "a"},
		&InvalidSeparatorError{Field: "b"},
	}}
	if want := "invalid config: 2 field error(s): a must not be empty\nb must not be empty"; multi.Error() != want {
		t.Errorf("Error() = %q, want %q", multi.Error(), want)
	}
}
