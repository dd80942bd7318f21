// SPDX-License-Identifier: MPL-2.0

// Package config loads the cmdtree configuration with Viper, using CUE as
// the file format.
//
// The file is config.cue in the platform configuration directory
// ($XDG_CONFIG_HOME/cmdtree on Linux, ~/Library/Application Support/cmdtree
// on macOS, %APPDATA%\cmdtree on Windows), falling back to config.cue in the
// working directory. It is validated against the embedded config_schema.cue.
// Environment variables prefixed with CMDTREE_ override file values
// (CMDTREE_UI_VERBOSE=true, CMDTREE_COMMAND_FILES=a.cue,b.toml).
package config
