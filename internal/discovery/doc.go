// SPDX-License-Identifier: MPL-2.0

// Package discovery assembles registered commands into a single command tree.
//
// Commands are registered as a flat list in any order. Each registration names
// the command and optionally the command it belongs under, either by name or
// by the Go type of the parent's Command value. Assemble orders the list so
// that every parent is placed before its children, rejects cyclic
// declarations, and attaches each node under its parent or, when the parent
// cannot be resolved, under a synthetic root.
//
// The package covers two concerns:
//   - Command file lookup: locating the command files to load
//   - Command assembly: building the tree from registrations
//
// File organization:
//   - registry.go: Command, Registration, Registry
//   - assemble.go: Assemble (graph construction, ordering, attachment)
//   - root.go: Root, the synthetic tree root that tracks attached commands
//   - diagnostic.go: non-fatal assembly diagnostics
//   - files.go: command file lookup
package discovery
