// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the cmdtree command-line interface.
//
// The CLI loads command files (commands.cue, commands.toml and the files
// listed in the configuration), assembles them into one command tree and
// dispatches text input against it, either once with `cmdtree run` or line
// by line with `cmdtree repl`.
package cmd
