// SPDX-License-Identifier: MPL-2.0

// Package cmdfile loads declarative command registrations from CUE or TOML
// command files.
//
// Both formats are validated against the embedded #CommandFile schema and
// then checked for rules the schema cannot express (an action is required,
// regex heads need a pattern that compiles). Each command becomes one
// discovery.Registration whose node head, metadata and action are built from
// the file entry.
package cmdfile
