// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"reflect"
	"slices"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

type (
	// Root is the synthetic root of an assembled tree. Besides the tree itself
	// it remembers every attached command so later commands can find their
	// parents by name or type.
	Root struct {
		node        *cmdtree.Node
		attached    []attachedCommand
		diagnostics []Diagnostic
	}

	attachedCommand struct {
		command Command
		node    *cmdtree.Node
	}
)

// NewRoot creates an empty root that matches without consuming input.
func NewRoot() *Root {
	return &Root{node: cmdtree.NewRoot()}
}

// Node returns the root node of the tree.
func (r *Root) Node() *cmdtree.Node {
	return r.node
}

// Attach adds cmd to the tree. The parent is looked up among commands attached
// so far, by identifier first and then by the dynamic type of the Command.
// Without a match the node goes directly under the root.
//
// Attach reports whether a parent was found.
func (r *Root) Attach(cmd Command, parent string, parentType reflect.Type) bool {
	node := cmd.CommandNode()
	target := r.lookup(parent, parentType)
	r.attached = append(r.attached, attachedCommand{command: cmd, node: node})

	if target == nil {
		r.node.AddChild(node)
		return false
	}
	target.AddChild(node)
	return true
}

func (r *Root) lookup(parent string, parentType reflect.Type) *cmdtree.Node {
	if parent != "" {
		for _, a := range r.attached {
			if a.node.Identifier() == parent {
				return a.node
			}
		}
	}
	if parentType != nil {
		for _, a := range r.attached {
			if reflect.TypeOf(a.command) == parentType {
				return a.node
			}
		}
	}
	return nil
}

// Commands returns every attached node in attachment order.
func (r *Root) Commands() []*cmdtree.Node {
	nodes := make([]*cmdtree.Node, len(r.attached))
	for i, a := range r.attached {
		nodes[i] = a.node
	}
	return nodes
}

// Lookup returns the attached node with the given identifier.
func (r *Root) Lookup(name string) (*cmdtree.Node, bool) {
	for _, a := range r.attached {
		if a.node.Identifier() == name {
			return a.node, true
		}
	}
	return nil, false
}

// Diagnostics returns the non-fatal problems found during assembly.
func (r *Root) Diagnostics() []Diagnostic {
	return slices.Clone(r.diagnostics)
}
