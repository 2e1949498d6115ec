package core

import (
	"fmt"
	"slices"
)

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// AddEdge inserts the directed edge from→to.
//
// Steps:
//  1. Validate both endpoints against [0, n).
//  2. Reject self-loops.
//  3. Insert under the write lock; an existing edge is left untouched.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int) error {
	// 1) bounds
	if err := g.checkVertex(from); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	if err := g.checkVertex(to); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	// 2) loops
	if from == to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	// 3) insert
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, ok := g.out[from][to]; !ok {
		g.out[from][to] = struct{}{}
		g.edgeCount++
	}

	return nil
}

// HasEdge reports whether from→to exists. Out-of-range vertices yield false.
func (g *Graph) HasEdge(from, to int) bool {
	if g.checkVertex(from) != nil || g.checkVertex(to) != nil {
		return false
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Neighbors returns the successors of v in ascending order.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, err)
	}
	g.muAdj.RLock()
	succ := make([]int, 0, len(g.out[v]))
	for w := range g.out[v] {
		succ = append(succ, w)
	}
	g.muAdj.RUnlock()
	slices.Sort(succ)

	return succ, nil
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.muAdj.RLock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, succ := range g.out {
		for to := range succ {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	g.muAdj.RUnlock()
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})

	return edges
}

// checkVertex returns ErrVertexOutOfRange unless 0 ≤ v < n.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}

	return nil
}
