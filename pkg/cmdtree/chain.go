// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"slices"
	"strings"
)

// Chain is the ordered path of nodes matched during one resolution, from the
// outermost command to the deepest match.
type Chain struct {
	nodes []*Node
}

// NewChain creates a chain holding nodes in order.
func NewChain(nodes ...*Node) *Chain {
	return &Chain{nodes: slices.Clone(nodes)}
}

// Append adds node at the end.
func (c *Chain) Append(node *Node) {
	c.nodes = append(c.nodes, node)
}

// AppendChain adds all nodes of other at the end.
func (c *Chain) AppendChain(other *Chain) {
	c.nodes = append(c.nodes, other.nodes...)
}

// Prepend adds node at the front.
func (c *Chain) Prepend(node *Node) {
	c.nodes = slices.Insert(c.nodes, 0, node)
}

// Nodes returns a copy of the nodes in order.
func (c *Chain) Nodes() []*Node {
	return slices.Clone(c.nodes)
}

// Len returns the number of nodes.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Final returns the last node. It panics on an empty chain.
func (c *Chain) Final() *Node {
	if len(c.nodes) == 0 {
		panic("cmdtree: Final called on empty chain")
	}
	return c.nodes[len(c.nodes)-1]
}

// Identifiers returns each node's identifier, skipping empty ones.
func (c *Chain) Identifiers() []string {
	ids := make([]string, 0, len(c.nodes))
	for _, n := range c.nodes {
		if id := n.Identifier(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// BuildUsage renders the usage of the chain: the identifiers of every link
// but the last, then the full Usage of the last link.
//
// Links are separated by a space unless the preceding link carries
// DataNoArgumentSeparator.
func (c *Chain) BuildUsage() string {
	var sb strings.Builder
	for i, n := range c.nodes {
		if i == len(c.nodes)-1 {
			sb.WriteString(n.Usage())
			break
		}
		id := n.Identifier()
		if id == "" {
			continue
		}
		sb.WriteString(id)
		if !noArgumentSeparator(n) {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

// String returns the identifiers joined by " > ", for logs.
func (c *Chain) String() string {
	return strings.Join(c.Identifiers(), " > ")
}
