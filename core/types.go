package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed edge From→To between two row indices.
type Edge struct {
	From int // source vertex
	To   int // destination vertex
}

// Graph is a directed simple graph on the vertex set {0, ..., n-1}.
//
// muAdj protects out and edgeCount; n is immutable after NewGraph.
type Graph struct {
	muAdj sync.RWMutex // guards out and edgeCount

	n         int                // number of vertices
	out       []map[int]struct{} // out[v] = set of successors of v
	edgeCount int                // number of distinct edges
}

// NewGraph creates a graph with n isolated vertices. A negative n is treated
// as 0.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	out := make([]map[int]struct{}, n)
	for v := range out {
		out[v] = make(map[int]struct{})
	}

	return &Graph{n: n, out: out}
}
