// Package core provides a small, thread-safe, in-memory directed Graph whose
// vertices are the integers 0..n-1.
//
// In this module the vertices are the rows of a Dyck path and the edges are
// the oriented boxes of an orientation: an ascending box (i,j) becomes i→j,
// a descending box becomes j→i. The graph is the general-purpose view used to
// compute linear extensions and level layouts (package dfs) and to cross-check
// the specialized 3-cycle criterion of package orientation.
//
// Properties:
//
//   - Fixed vertex set: the order n is chosen at construction.
//   - Simple directed edges: no self-loops, duplicate AddEdge calls are no-ops.
//   - Deterministic iteration: Neighbors and Edges return sorted results.
//   - sync.RWMutex guards the adjacency; concurrent readers never block each other.
//
// Core Methods:
//
//	NewGraph(n int) *Graph              // O(n)
//	AddEdge(from, to int) error         // O(1)
//	HasEdge(from, to int) bool          // O(1)
//	Neighbors(v int) ([]int, error)     // O(d·log d)
//	Edges() []Edge                      // O(E·log E)
//	Order() int, EdgeCount() int        // O(1)
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside [0, n).
//	ErrLoopNotAllowed   - from == to.
package core
