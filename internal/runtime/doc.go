// SPDX-License-Identifier: MPL-2.0

// Package runtime runs command scripts with an embedded shell interpreter
// (mvdan/sh), so command files work the same on every platform without a
// host shell.
//
// VirtualRuntime.Compile parses a script once and returns a cmdtree.Action.
// When invoked, the action turns the remaining input into positional
// parameters ($1..$n), runs the script with the invocation's streams and
// context, and maps a non-zero exit status to an *ExitError.
package runtime
