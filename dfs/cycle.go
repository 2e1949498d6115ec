package dfs

import (
	"slices"

	"github.com/katalvlaran/dyck/core"
)

// DetectCycle inspects g for a directed cycle.
// Returns (true, cycle, nil) with a closed witness [v0, ..., v0] when one
// exists, (false, nil, nil) otherwise. A nil graph is treated as cycle-free.
//
// Complexity: Time O(V+E·log d), Memory O(V).
func DetectCycle(g *core.Graph) (bool, []int, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state and the current DFS path
	state := make([]int, g.Order())
	path := make([]int, 0, g.Order())

	// 3) Launch DFS from each unvisited vertex in ascending order
	for v := 0; v < g.Order(); v++ {
		if state[v] != White {
			continue
		}
		cycle, err := findCycle(g, v, state, &path)
		if err != nil {
			return false, nil, err
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// findCycle runs DFS from v and returns the first closed cycle it meets.
func findCycle(g *core.Graph, v int, state []int, path *[]int) ([]int, error) {
	// 1) enter v
	state[v] = Gray
	*path = append(*path, v)

	succ, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	for _, w := range succ {
		switch state[w] {
		case White:
			cycle, err := findCycle(g, w, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			// 2) back edge v→w: the cycle is path[idx(w):] closed by w
			idx := slices.Index(*path, w)
			cycle := append(slices.Clone((*path)[idx:]), w)
			return cycle, nil
		}
	}

	// 3) leave v
	*path = (*path)[:len(*path)-1]
	state[v] = Black

	return nil, nil
}
