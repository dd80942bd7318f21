// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"reflect"
	"slices"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

type (
	// Command is a discoverable command. CommandNode must return the same node
	// on every call. The dynamic type of the Command value is what
	// Registration.ParentType is matched against.
	Command interface {
		CommandNode() *cmdtree.Node
	}

	// NodeCommand adapts a plain node to Command.
	NodeCommand struct {
		Node *cmdtree.Node
	}

	// Registration declares one command and where it belongs in the tree.
	Registration struct {
		Command Command
		// Name is stored as the node's identifier and is what other
		// registrations refer to in Parent.
		Name string
		// Parent is the Name of the parent registration (optional).
		Parent string
		// ParentType is the dynamic type of the parent's Command (optional).
		// It is only consulted when Parent is empty or matches nothing.
		ParentType reflect.Type
		// Source describes where the registration came from, e.g. a file path.
		Source string
	}

	// Registry collects registrations in declaration order.
	Registry struct {
		registrations []Registration
	}

	// RegisterOption configures a registration made with Registry.Register.
	RegisterOption func(*Registration)
)

// CommandNode returns the wrapped node.
func (c *NodeCommand) CommandNode() *cmdtree.Node {
	return c.Node
}

// TypeOf returns the reflect.Type of T, for use as Registration.ParentType.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// WithParent declares the parent by name.
func WithParent(name string) RegisterOption {
	return func(r *Registration) {
		r.Parent = name
	}
}

// WithParentType declares the parent by the type of its Command value.
func WithParentType(t reflect.Type) RegisterOption {
	return func(r *Registration) {
		r.ParentType = t
	}
}

// WithSource records where the registration came from.
func WithSource(source string) RegisterOption {
	return func(r *Registration) {
		r.Source = source
	}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds cmd under name.
func (r *Registry) Register(name string, cmd Command, opts ...RegisterOption) {
	reg := Registration{Command: cmd, Name: name}
	for _, opt := range opts {
		opt(&reg)
	}
	r.registrations = append(r.registrations, reg)
}

// Add appends prepared registrations.
func (r *Registry) Add(regs ...Registration) {
	r.registrations = append(r.registrations, regs...)
}

// Registrations returns a copy of the registrations in declaration order.
func (r *Registry) Registrations() []Registration {
	return slices.Clone(r.registrations)
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	return len(r.registrations)
}

// Assemble builds the command tree from the registry's contents.
func (r *Registry) Assemble(opts ...Option) (*Root, error) {
	return Assemble(r.registrations, opts...)
}
