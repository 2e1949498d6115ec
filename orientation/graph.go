package orientation

import (
	"fmt"

	"github.com/katalvlaran/dyck/core"
	"github.com/katalvlaran/dyck/dfs"
)

// Graph returns the directed graph of o on the rows 0..N-1: an ascent (i,j)
// becomes i→j, a descent (i,j) becomes j→i. The graph may be cyclic when o
// is not valid; errors only come from out-of-range boxes.
func (o Orientation) Graph() (*core.Graph, error) {
	if o.N < 0 {
		return nil, fmt.Errorf("Graph: n=%d: %w", o.N, ErrNegativeSize)
	}
	g := core.NewGraph(o.N)
	for b := range o.Ascents.All() {
		if err := g.AddEdge(b.I, b.J); err != nil {
			return nil, fmt.Errorf("Graph: ascent %v: %w", b, err)
		}
	}
	for b := range o.Descents.All() {
		if err := g.AddEdge(b.J, b.I); err != nil {
			return nil, fmt.Errorf("Graph: descent %v: %w", b, err)
		}
	}

	return g, nil
}

// LinearExtension returns a total ordering of the rows that induces o:
// ordering[r] is the rank of row r, so FromOrdering(path, ordering)
// reproduces o. Returns dfs.ErrCycleDetected for a cyclic relation.
func (o Orientation) LinearExtension() ([]int, error) {
	g, err := o.Graph()
	if err != nil {
		return nil, err
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("LinearExtension: %w", err)
	}
	// invert position list into ranks
	ranks := make([]int, len(order))
	for pos, row := range order {
		ranks[row] = pos
	}

	return ranks, nil
}

// Levels returns the drawing height of every row: the length of the longest
// directed path ending at it. Returns dfs.ErrCycleDetected for a cyclic
// relation.
func (o Orientation) Levels() ([]int, error) {
	g, err := o.Graph()
	if err != nil {
		return nil, err
	}
	levels, err := dfs.Levels(g)
	if err != nil {
		return nil, fmt.Errorf("Levels: %w", err)
	}

	return levels, nil
}
