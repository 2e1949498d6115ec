package orientation

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/dyck/dyckpath"
)

// AllOrientations returns every distinct acyclic orientation of the boxes
// under path, sorted by Key.
//
// Steps:
//  1. Reject a non-Dyck path (ErrInvalidPath).
//  2. Derive the boxes once (through the cache, if any).
//  3. For each of the n! orderings of the rows classify every box (i,j) as
//     ascending when ordering[i] < ordering[j], else descending.
//  4. Deduplicate structurally by Key; many orderings collapse together.
//
// Every returned orientation satisfies Validate and reconstructs path.
// Complexity: O(n!·|boxes|·log|boxes|); keep n ≤ 8.
func AllOrientations(path dyckpath.Path, opts ...Option) ([]Orientation, error) {
	// 1) validate input
	if !dyckpath.IsDyckPath(path) {
		return nil, fmt.Errorf("AllOrientations(%v): %w", path, ErrInvalidPath)
	}
	options := resolve(opts)

	// 2) derive boxes
	boxes := options.boxes(path).Boxes()

	// 3-4) classify per ordering, deduplicate
	seen := make(map[string]Orientation)
	for ordering := range permutations(len(path)) {
		o := classify(len(path), boxes, ordering)
		key := o.Key()
		_, dup := seen[key]
		if !dup {
			seen[key] = o
		}
		if options.OnOrientation != nil {
			options.OnOrientation(o, !dup)
		}
	}

	out := make([]Orientation, 0, len(seen))
	for _, o := range seen {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b Orientation) int {
		return strings.Compare(a.Key(), b.Key())
	})

	return out, nil
}

// FromOrdering returns the orientation induced on the boxes of path by a
// total ordering of its rows: ordering[r] is the rank of row r.
// Returns ErrInvalidPath or ErrBadOrdering.
func FromOrdering(path dyckpath.Path, ordering []int, opts ...Option) (Orientation, error) {
	if !dyckpath.IsDyckPath(path) {
		return Orientation{}, fmt.Errorf("FromOrdering(%v): %w", path, ErrInvalidPath)
	}
	if !isPermutation(ordering, len(path)) {
		return Orientation{}, fmt.Errorf("FromOrdering(%v, %v): %w", path, ordering, ErrBadOrdering)
	}
	options := resolve(opts)

	return classify(len(path), options.boxes(path).Boxes(), ordering), nil
}

// classify splits boxes by the ranks in ordering.
func classify(n int, boxes []dyckpath.Box, ordering []int) Orientation {
	ascents := make([]dyckpath.Box, 0, len(boxes))
	descents := make([]dyckpath.Box, 0, len(boxes))
	for _, b := range boxes {
		if ordering[b.I] < ordering[b.J] {
			ascents = append(ascents, b)
		} else {
			descents = append(descents, b)
		}
	}

	return New(n, ascents, descents)
}

// isPermutation reports whether p is a permutation of 0..n-1.
func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// permutations yields every permutation of 0..n-1 in lexicographic order,
// starting from the identity. n = 0 yields the empty permutation once.
// The yielded slice is reused between iterations; callers must not keep it.
func permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}
		for {
			if !yield(p) {
				return
			}
			if !nextPermutation(p) {
				return
			}
		}
	}
}

// nextPermutation advances p to its lexicographic successor in place and
// reports false when p was the last permutation.
func nextPermutation(p []int) bool {
	// 1) longest non-increasing suffix starts after i
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// 2) rightmost element greater than the pivot
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	// 3) swap and reverse the suffix
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}
