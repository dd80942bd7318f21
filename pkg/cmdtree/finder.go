// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"github.com/cmdtree/cmdtree/pkg/cursor"
	"github.com/cmdtree/cmdtree/pkg/parse"
)

type (
	// Finder locates the deepest command matching a prefix of the input.
	Finder struct {
		root      *Node
		separator *parse.Matcher
	}

	// FinderOption configures a Finder.
	FinderOption func(*Finder)
)

// DefaultSeparator returns the matcher used between nested heads and between
// a command and its arguments unless configured otherwise: a single space.
func DefaultSeparator() *parse.Matcher {
	return parse.Wrap(parse.Literal(" "))
}

// WithSeparator sets the matcher expected between two nested command heads.
func WithSeparator(separator *parse.Matcher) FinderOption {
	return func(f *Finder) {
		f.separator = separator
	}
}

// NewFinder creates a finder over the tree below root.
func NewFinder(root *Node, opts ...FinderOption) *Finder {
	f := &Finder{
		root:      root,
		separator: DefaultSeparator(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Root returns the tree root the finder searches.
func (f *Finder) Root() *Node {
	return f.root
}

// Find resolves c against the root's children.
//
// On success the chain holds the matched nodes, outermost first, and the
// cursor sits right after the deepest head. On failure the chain holds only
// the root and the cursor is unchanged.
func (f *Finder) Find(c *cursor.Cursor) (*Chain, bool) {
	return f.FindFrom(f.root, c)
}

// FindFrom resolves c against the children of node.
func (f *Finder) FindFrom(node *Node, c *cursor.Cursor) (*Chain, bool) {
	for _, child := range node.children {
		if !child.head.Match(c) {
			continue
		}

		beforeArgument := c.Position()
		chain := NewChain(child)

		if !f.separator.Match(c) {
			// Heads flagged as not needing a separator may be followed
			// directly by a nested head.
			if noArgumentSeparator(child) {
				if sub, ok := f.FindFrom(child, c); ok {
					chain.AppendChain(sub)
				}
			}
			return chain, true
		}

		if sub, ok := f.FindFrom(child, c); ok {
			chain.AppendChain(sub)
			return chain, true
		}

		// The separator belongs to the arguments, not to a deeper command.
		c.Reset(beforeArgument)
		return chain, true
	}

	return NewChain(node), false
}
