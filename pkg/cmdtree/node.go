// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/parse"
)

// Node is one command in the tree.
//
// A node appears in at most one parent's child list. Children are kept in
// insertion order, which is also the order the Finder tries them in.
type Node struct {
	action   Action
	head     *parse.Matcher
	data     map[DataKey]any
	children []*Node
	parent   *Node
}

// NewNode creates a node with the given head matcher. A nil action means Nop
// and a nil head means parse.AlwaysTrue.
func NewNode(action Action, head *parse.Matcher) *Node {
	if action == nil {
		action = Nop
	}
	if head == nil {
		head = parse.AlwaysTrue()
	}
	return &Node{
		action: action,
		head:   head,
		data:   make(map[DataKey]any),
	}
}

// NewLiteral creates a node whose head is the literal keyword.
func NewLiteral(keyword string, action Action) *Node {
	return NewNode(action, parse.Wrap(parse.Literal(keyword)))
}

// NewParsed creates a node whose head is any parser. The parsed value is
// discarded; actions that need it re-parse from the chain or their arguments.
func NewParsed[T any](p parse.Parser[T], action Action) *Node {
	return NewNode(action, parse.Wrap(p))
}

// NewRoot creates a node suitable as a tree root: it matches without consuming input.
func NewRoot() *Node {
	return NewNode(Nop, parse.AlwaysTrue())
}

// Head returns the node's head matcher.
func (n *Node) Head() *parse.Matcher {
	return n.head
}

// Action returns the node's action.
func (n *Node) Action() Action {
	return n.action
}

// SetAction replaces the node's action. A nil action means Nop.
func (n *Node) SetAction(action Action) {
	if action == nil {
		action = Nop
	}
	n.action = action
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends child, detaching it from its previous parent first.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	n.children = append(n.children, child)
	child.parent = n
}

// RemoveChild detaches child and reports whether it was a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// SetData stores value under key and returns n for chaining.
func (n *Node) SetData(key DataKey, value any) *Node {
	n.data[key] = value
	return n
}

// Data returns the value stored under key.
func (n *Node) Data(key DataKey) (any, bool) {
	v, ok := n.data[key]
	return v, ok
}

// HasData reports whether a value is stored under key.
func (n *Node) HasData(key DataKey) bool {
	_, ok := n.data[key]
	return ok
}

// Identifier returns the DataIdentifier metadata, falling back to the head's name.
func (n *Node) Identifier() string {
	if id := DataString(n, DataIdentifier); id != "" {
		return id
	}
	return n.head.Name()
}

// Usage returns the head's name followed by the bracketed usages of all
// children, e.g. "cmd [sub1|sub2 [deep]]".
func (n *Node) Usage() string {
	name := n.head.Name()
	if len(n.children) == 0 {
		return name
	}

	parts := make([]string, len(n.children))
	for i, child := range n.children {
		parts[i] = child.Usage()
	}
	sub := "[" + strings.Join(parts, "|") + "]"
	if name == "" {
		return sub
	}
	return name + " " + sub
}

// Walk calls fn for n and every descendant, depth first in child order.
// depth is 0 for n itself.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// String implements fmt.Stringer for debugging output.
func (n *Node) String() string {
	return fmt.Sprintf("Node{id=%q, children=%d}", n.Identifier(), len(n.children))
}
