package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dyck/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state []int       // visitation state per vertex
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices of g.
// If g is nil, returns ErrGraphNil.
// If a cycle is reachable, returns ErrCycleDetected.
// Pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, g.Order()), // all vertices start White
		order: make([]int, 0, g.Order()),
	}
	// 4. Drive DFS from every unvisited vertex, highest first so that the
	//    reversed post-order prefers low row indices among free choices
	for v := g.Order() - 1; v >= 0; v-- {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting back edges.
func (t *topoSorter) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Back edge into the recursion stack
	if t.state[v] == Gray {
		return fmt.Errorf("%w: vertex %d", ErrCycleDetected, v)
	}
	// 3. Already finished
	if t.state[v] == Black {
		return nil
	}
	// 4. Mark as in-progress
	t.state[v] = Gray

	// 5. Explore successors, highest first (see step 4 of TopologicalSort)
	succ, err := t.graph.Neighbors(v)
	if err != nil {
		return err
	}
	for i := len(succ) - 1; i >= 0; i-- {
		if err = t.visit(succ[i]); err != nil {
			return err
		}
	}

	// 6. Finish and record
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}

// Levels returns, for every vertex, the number of edges on the longest
// directed path ending at it. Sources have level 0. On an orientation this
// is the height at which each row is drawn.
// Returns ErrCycleDetected when g has a cycle.
func Levels(g *core.Graph, options ...TopoOption) ([]int, error) {
	order, err := TopologicalSort(g, options...)
	if err != nil {
		return nil, err
	}
	level := make([]int, g.Order())
	for _, u := range order {
		succ, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range succ {
			level[v] = max(level[v], level[u]+1)
		}
	}

	return level, nil
}
