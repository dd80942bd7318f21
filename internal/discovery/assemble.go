// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cmdtree/cmdtree/internal/dag"
	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

// unnamedCommand is shown in cycle paths for nodes without any name.
const unnamedCommand = "N/A"

var (
	// ErrCommandCycle is the sentinel wrapped by every *CycleError.
	ErrCommandCycle = errors.New("command cycle detected")

	// ErrNilCommand is returned when a registration has no command or the
	// command has no node.
	ErrNilCommand = errors.New("registration has no command node")
)

type (
	// CycleError reports registrations whose declared parents form a cycle.
	CycleError struct {
		// Path holds command identifiers from the earliest registration in the
		// cycle, through each declared parent, back to itself.
		Path []string
		// Err is the underlying graph error with registration indices.
		Err *dag.CycleError[int]
	}

	// Option configures Assemble.
	Option func(*assembler)

	assembler struct {
		logger *log.Logger
	}
)

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("command cycle detected: %s", strings.Join(e.Path, " -> "))
}

// Is makes every CycleError match ErrCommandCycle.
func (e *CycleError) Is(target error) bool {
	return target == ErrCommandCycle
}

// Unwrap returns the underlying graph error.
func (e *CycleError) Unwrap() error {
	return e.Err
}

// WithLogger sets the logger used for assembly diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(a *assembler) {
		a.logger = logger
	}
}

// Assemble builds one command tree from regs.
//
// Every registration's node gets its Name as identifier. Parents are resolved
// by name first, then by type; the registrations are ordered so each parent
// precedes its children, and nodes are attached in that order. Siblings keep
// their declaration order. A cycle among declared parents aborts assembly with
// a *CycleError.
func Assemble(regs []Registration, opts ...Option) (*Root, error) {
	a := &assembler{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(a)
	}

	nodes := make([]*cmdtree.Node, len(regs))
	for i, reg := range regs {
		if reg.Command == nil || reg.Command.CommandNode() == nil {
			return nil, fmt.Errorf("registration %q: %w", reg.Name, ErrNilCommand)
		}
		nodes[i] = reg.Command.CommandNode()
		if reg.Name != "" {
			nodes[i].SetData(cmdtree.DataIdentifier, reg.Name)
		}
	}

	root := NewRoot()
	root.diagnostics = append(root.diagnostics, duplicateNames(regs)...)

	// Nodes and edges are added in reverse so that the reverse post-order
	// produced by the sort lists siblings in declaration order.
	graph := dag.New[int]()
	for i := len(regs) - 1; i >= 0; i-- {
		graph.AddNode(i)
	}
	for i := len(regs) - 1; i >= 0; i-- {
		parent, ok := findParent(regs, regs[i])
		if !ok {
			if regs[i].Parent != "" || regs[i].ParentType != nil {
				root.diagnostics = append(root.diagnostics, parentNotFound(regs[i]))
			}
			continue
		}
		graph.AddEdge(parent, i)
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		var cycleErr *dag.CycleError[int]
		if errors.As(err, &cycleErr) {
			path := cyclePath(nodes, rotateToEarliest(childToParent(cycleErr.Cycle)))
			a.logger.Error("command cycle detected", "cycle", strings.Join(path, " -> "))
			return nil, &CycleError{Path: path, Err: cycleErr}
		}
		return nil, err
	}

	for _, i := range order {
		reg := regs[i]
		found := root.Attach(reg.Command, reg.Parent, reg.ParentType)
		a.logger.Debug("attached command", "command", reg.Name, "parent", reg.Parent, "under_root", !found)
	}

	return root, nil
}

// findParent returns the index of the registration reg belongs under:
// the first whose Name equals reg.Parent, else the first whose Command has
// type reg.ParentType.
func findParent(regs []Registration, reg Registration) (int, bool) {
	if reg.Parent != "" {
		for j, other := range regs {
			if other.Name == reg.Parent {
				return j, true
			}
		}
	}
	if reg.ParentType != nil {
		for j, other := range regs {
			if reflect.TypeOf(other.Command) == reg.ParentType {
				return j, true
			}
		}
	}
	return 0, false
}

// childToParent reverses a graph cycle, whose edges run parent to child, so it
// follows the declared Parent references instead.
func childToParent(cycle []int) []int {
	reversed := slices.Clone(cycle)
	slices.Reverse(reversed)
	return reversed
}

// rotateToEarliest rotates a closed cycle [a, b, c, a] so that it starts and
// ends at its lowest index.
func rotateToEarliest(cycle []int) []int {
	if len(cycle) < 2 {
		return cycle
	}
	open := cycle[:len(cycle)-1]
	start := 0
	for i, v := range open {
		if v < open[start] {
			start = i
		}
	}
	rotated := make([]int, 0, len(cycle))
	rotated = append(rotated, open[start:]...)
	rotated = append(rotated, open[:start]...)
	return append(rotated, open[start])
}

func cyclePath(nodes []*cmdtree.Node, cycle []int) []string {
	path := make([]string, len(cycle))
	for i, idx := range cycle {
		name := nodes[idx].Identifier()
		if name == "" {
			name = unnamedCommand
		}
		path[i] = name
	}
	return path
}

func parentNotFound(reg Registration) Diagnostic {
	declared := reg.Parent
	if declared == "" {
		declared = reg.ParentType.String()
	}
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeParentNotFound,
		Message:  fmt.Sprintf("parent %q of command %q not found, attaching it at the top level", declared, reg.Name),
		Command:  reg.Name,
		Path:     reg.Source,
	}
}

func duplicateNames(regs []Registration) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]bool, len(regs))
	for _, reg := range regs {
		if reg.Name == "" {
			continue
		}
		if seen[reg.Name] {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeDuplicateName,
				Message:  fmt.Sprintf("command %q is registered more than once", reg.Name),
				Command:  reg.Name,
				Path:     reg.Source,
			})
		}
		seen[reg.Name] = true
	}
	return diags
}
