// SPDX-License-Identifier: MPL-2.0

// Package cmdtree resolves textual input against a tree of commands.
//
// A tree is made of Nodes. Each node has a head matcher that decides whether
// it applies to the next piece of input, an Action to run when it is the
// deepest match, string-keyed metadata, and ordered children. A Finder walks
// the tree with a cursor.Cursor and returns the Chain of matched nodes; an
// Executor runs the final node's action against the rest of the input.
//
// Head matching is transactional: a head that fails leaves the cursor where it
// was, so siblings can be tried in declaration order. Only the first sibling
// whose head matches is explored. The separator between two nested heads is
// only consumed when a deeper head follows it; otherwise it is left for the
// argument parsers.
//
// A fully built tree is read-only during resolution and may be shared between
// goroutines that each own their cursor. Building the tree is not safe for
// concurrent use.
package cmdtree
