package orientation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dyck/dyckpath"
)

// IsOrientation reports whether v is a valid acyclic orientation.
// Only an Orientation value or a non-nil *Orientation can qualify; any other
// value (slices, arrays, maps, other structs, nil) yields false. It never
// panics and never returns an error.
func IsOrientation(v any, opts ...Option) bool {
	switch o := v.(type) {
	case Orientation:
		return Validate(o, opts...) == nil
	case *Orientation:
		return o != nil && Validate(*o, opts...) == nil
	default:
		return false
	}
}

// Validate checks o and returns nil when it is a valid acyclic orientation,
// otherwise the first failing reason as a wrapped sentinel.
//
// Steps (short-circuit on first failure):
//  1. 0 ≤ N ≤ MaxSize                               (ErrNegativeSize, ErrSizeTooLarge)
//  2. reconstruct the path, every box row in range  (ErrIndexOutOfRange)
//  3. the reconstructed path is a Dyck path         (ErrNotDyckPath)
//  4. ascents ∩ descents = ∅                        (ErrOverlap)
//  5. ascents ∪ descents = boxes under the path     (ErrNotExhaustive)
//  6. no directed 3-cycle                           (ErrThreeCycle)
//
// Complexity: O(n³) triples with O(1) lookups, plus box derivation.
func Validate(o Orientation, opts ...Option) error {
	options := resolve(opts)

	// 1-2) shape and reconstruction
	path, err := o.Path()
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	// 3) the boxes must sit under a Dyck path
	if !dyckpath.IsDyckPath(path) {
		return fmt.Errorf("Validate: reconstructed %v: %w", path, ErrNotDyckPath)
	}

	// 4) a box has exactly one direction
	if !o.Ascents.Disjoint(o.Descents) {
		return fmt.Errorf("Validate: %w", ErrOverlap)
	}

	// 5) no extra and no missing boxes
	if !o.Ascents.Union(o.Descents).Equal(options.boxes(path)) {
		return fmt.Errorf("Validate: path %v: %w", path, ErrNotExhaustive)
	}

	// 6) acyclicity
	if i, j, k, found := findThreeCycle(o); found {
		return fmt.Errorf("Validate: rows (%d,%d,%d): %w", i, j, k, ErrThreeCycle)
	}

	return nil
}

// findThreeCycle scans every triple i<j<k for the two directed 3-cycles:
//
//	i→j→k→i : asc(i,j), asc(j,k), desc(i,k)
//	i→k→j→i : desc(i,j), desc(j,k), asc(i,k)
//
// Returns the first offending triple in lexicographic order.
func findThreeCycle(o Orientation) (int, int, int, bool) {
	asc, desc := o.Ascents, o.Descents
	for i := 0; i < o.N; i++ {
		for j := i + 1; j < o.N; j++ {
			ij := dyckpath.Box{I: i, J: j}
			ascIJ, descIJ := asc.Contains(ij), desc.Contains(ij)
			if !ascIJ && !descIJ {
				// (i,j) is not a box, so no (i,k) with k>j is either
				break
			}
			for k := j + 1; k < o.N; k++ {
				jk := dyckpath.Box{I: j, J: k}
				ik := dyckpath.Box{I: i, J: k}
				if ascIJ && asc.Contains(jk) && desc.Contains(ik) {
					return i, j, k, true
				}
				if descIJ && desc.Contains(jk) && asc.Contains(ik) {
					return i, j, k, true
				}
			}
		}
	}

	return 0, 0, 0, false
}

// Reason returns a short stable code for an error returned by Validate:
// "" for nil, "negative_size", "size_too_large", "index_out_of_range", "not_dyck_path",
// "overlap", "not_exhaustive", "three_cycle", or "unknown".
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNegativeSize):
		return "negative_size"
	case errors.Is(err, ErrSizeTooLarge):
		return "size_too_large"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, ErrNotDyckPath):
		return "not_dyck_path"
	case errors.Is(err, ErrOverlap):
		return "overlap"
	case errors.Is(err, ErrNotExhaustive):
		return "not_exhaustive"
	case errors.Is(err, ErrThreeCycle):
		return "three_cycle"
	default:
		return "unknown"
	}
}
