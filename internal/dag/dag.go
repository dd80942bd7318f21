// SPDX-License-Identifier: MPL-2.0

// Package dag provides directed graph ordering with cycle detection. It is used
// by command discovery to place every command after the command it is
// declared under.
package dag

import (
	"fmt"
	"strings"
)

const (
	unvisited mark = iota
	inProgress
	done
)

type (
	// CycleError indicates that the graph contains a cycle, preventing topological ordering.
	CycleError[K comparable] struct {
		// Cycle runs from the node where the cycle was entered, along the edges,
		// back to that same node: [A, B, C, A].
		Cycle []K
	}

	// Graph is a directed graph for topological sorting.
	// Edges represent "must come before" relationships: an edge from A to B
	// means A is ordered before B.
	Graph[K comparable] struct {
		// adjacency maps each node to its outgoing neighbors in insertion order.
		adjacency map[K][]K
		// nodes tracks all nodes in insertion order for deterministic output.
		nodes []K
		// nodeSet provides O(1) lookup for node existence.
		nodeSet map[K]bool
	}

	mark int
)

func (e *CycleError[K]) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, k := range e.Cycle {
		parts[i] = fmt.Sprint(k)
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(parts, " -> "))
}

// New creates an empty Graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		adjacency: make(map[K][]K),
		nodeSet:   make(map[K]bool),
	}
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph[K]) AddNode(node K) {
	if g.nodeSet[node] {
		return
	}
	g.nodeSet[node] = true
	g.nodes = append(g.nodes, node)
}

// AddEdge adds a directed edge from -> to, meaning "from" comes before "to".
// Both nodes are implicitly added if they don't exist.
func (g *Graph[K]) AddEdge(from, to K) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// HasNode reports whether node was added.
func (g *Graph[K]) HasNode(node K) bool {
	return g.nodeSet[node]
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

// TopologicalSort orders the nodes so that every node comes before its
// neighbors, using depth-first search with three marks (unvisited,
// in progress, done).
//
// Nodes and neighbors are visited in insertion order and each finished node is
// prepended to the result, so the output is deterministic. Reaching a node that
// is still in progress returns a *CycleError describing the cycle.
func (g *Graph[K]) TopologicalSort() ([]K, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	s := &sorter[K]{
		graph: g,
		marks: make(map[K]mark, len(g.nodes)),
		order: make([]K, len(g.nodes)),
		next:  len(g.nodes) - 1,
	}
	for _, node := range g.nodes {
		if err := s.visit(node); err != nil {
			return nil, err
		}
	}
	return s.order, nil
}

type sorter[K comparable] struct {
	graph *Graph[K]
	marks map[K]mark
	// path holds the in-progress nodes from the outermost visit inwards.
	path []K
	// order is filled from the back, which prepends in post-order.
	order []K
	next  int
}

func (s *sorter[K]) visit(node K) error {
	switch s.marks[node] {
	case done:
		return nil
	case inProgress:
		return &CycleError[K]{Cycle: s.cycleFrom(node)}
	}

	s.marks[node] = inProgress
	s.path = append(s.path, node)

	for _, neighbor := range s.graph.adjacency[node] {
		if err := s.visit(neighbor); err != nil {
			return err
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.marks[node] = done
	s.order[s.next] = node
	s.next--
	return nil
}

// cycleFrom returns the in-progress path starting at entry and closed by entry.
func (s *sorter[K]) cycleFrom(entry K) []K {
	start := 0
	for i, k := range s.path {
		if k == entry {
			start = i
			break
		}
	}
	cycle := make([]K, 0, len(s.path)-start+1)
	cycle = append(cycle, s.path[start:]...)
	return append(cycle, entry)
}
