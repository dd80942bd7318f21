// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSeparator is returned for an empty separator.
	ErrInvalidSeparator = errors.New("invalid separator")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the terminal color scheme.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Separator is the text expected between two parts of an input line.
	Separator string

	// InvalidSeparatorError names the setting holding an empty separator.
	InvalidSeparatorError struct {
		Field string
	}

	// InvalidConfigError collects every field error of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the application configuration.
	Config struct {
		// ArgumentSeparator separates nested command heads.
		ArgumentSeparator Separator `json:"argument_separator" mapstructure:"argument_separator"`
		// CommandSeparator separates a command from its arguments.
		CommandSeparator Separator `json:"command_separator" mapstructure:"command_separator"`
		// CommandFiles lists extra command files to load.
		CommandFiles []string `json:"command_files" mapstructure:"command_files"`
		// UI holds presentation settings.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// REPL holds interactive loop settings.
		REPL REPLConfig `json:"repl" mapstructure:"repl"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// REPLConfig holds interactive loop settings.
	REPLConfig struct {
		// Prompt is printed before each line when stdin is a terminal.
		Prompt string `json:"prompt" mapstructure:"prompt"`
		// ExitWord ends the loop.
		ExitWord string `json:"exit_word" mapstructure:"exit_word"`
	}
)

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		ArgumentSeparator: " ",
		CommandSeparator:  " ",
		CommandFiles:      []string{},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		REPL: REPLConfig{
			Prompt:   "> ",
			ExitWord: "exit",
		},
	}
}

// IsValid reports whether the color scheme is recognized.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// String returns the scheme name.
func (c ColorScheme) String() string { return string(c) }

// GlamourStyle returns the glamour standard style for the scheme.
func (c ColorScheme) GlamourStyle() string {
	if c == "" {
		return string(ColorSchemeAuto)
	}
	return string(c)
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidSeparatorError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// Unwrap returns ErrInvalidSeparator.
func (e *InvalidSeparatorError) Unwrap() error { return ErrInvalidSeparator }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// IsValid checks every field and returns an *InvalidConfigError listing all
// problems.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.ArgumentSeparator == "" {
		errs = append(errs, &InvalidSeparatorError{Field: "argument_separator"})
	}
	if c.CommandSeparator == "" {
		errs = append(errs, &InvalidSeparatorError{Field: "command_separator"})
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.REPL.ExitWord == "" {
		errs = append(errs, errors.New("repl.exit_word must not be empty"))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}
