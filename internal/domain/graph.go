package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks setup failures that abort a single evaluation
// (e.g., an empty edge set). Domain infeasibility is never reported this way.
var ErrConfiguration = errors.New("configuration error")

// MaxNodes bounds N. Node ids must be below it.
const MaxNodes = 1 << 24

// A directed, weighted connection from Source to Target.
type Edge struct {
	Source int
	Target int
	Weight float64
}

// Outgoing half of an Edge as stored in a node's adjacency list.
type Arc struct {
	Target int
	Weight float64
}

// Graph is a write-once adjacency list over nodes [0, N).
//
// Nodes are implicit: N is one plus the largest id referenced by any edge.
// Parallel edges are retained in insertion order. A Graph is never mutated
// after NewGraph returns, so it is safe to share across goroutines.
type Graph struct {
	adj [][]Arc
}

// NewGraph builds the adjacency list for the given edges.
func NewGraph(edges []Edge) (*Graph, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("new graph: edge set is empty: %w", ErrConfiguration)
	}

	maxID := 0
	for i, e := range edges {
		if e.Source < 0 || e.Target < 0 {
			return nil, fmt.Errorf(
				"new graph: edge #%d %d->%d has a negative node id: %w",
				i+1, e.Source, e.Target, ErrConfiguration,
			)
		}
		maxID = max(maxID, e.Source, e.Target)
	}
	if maxID >= MaxNodes {
		return nil, fmt.Errorf("new graph: node id %d exceeds limit %d: %w", maxID, MaxNodes-1, ErrConfiguration)
	}

	adj := make([][]Arc, maxID+1)
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], Arc{Target: e.Target, Weight: e.Weight})
	}

	return &Graph{adj: adj}, nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return len(g.adj) }

// InRange reports whether 0 <= node < N.
func (g *Graph) InRange(node int) bool { return node >= 0 && node < len(g.adj) }

// Neighbors returns the outgoing arcs of node in insertion order.
// Out-of-range nodes have no neighbors. Callers must not modify the slice.
func (g *Graph) Neighbors(node int) []Arc {
	if !g.InRange(node) {
		return nil
	}
	return g.adj[node]
}

// ArcWeight resolves a->b to the first matching arc in a's adjacency list.
// With parallel edges this is not necessarily the cheapest one.
func (g *Graph) ArcWeight(a, b int) (float64, bool) {
	for _, arc := range g.Neighbors(a) {
		if arc.Target == b {
			return arc.Weight, true
		}
	}
	return 0, false
}
