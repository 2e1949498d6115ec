package dyckpath

import (
	"fmt"
	"slices"
)

// CrossCheck verifies the enumerator against the predicates for every
// length 0..maxN:
//
//  1. sorted AllDyckPaths(n) equals the lexicographic filter of {0..n-1}^n
//     by IsDyckPath;
//  2. sorted AllDyckPaths(n, WithPrimitive(true)) equals that list filtered
//     by IsPrimitive.
//
// Returns ErrGenerationMismatch (wrapped with n and the failing step).
// Complexity: O(maxN · maxN^maxN); keep maxN ≤ 7.
func CrossCheck(maxN int) error {
	if maxN < 0 {
		return fmt.Errorf("CrossCheck(%d): %w", maxN, ErrNegativeLength)
	}
	for n := 0; n <= maxN; n++ {
		// 1) unrestricted enumeration vs brute force
		iterated, err := Collect(n)
		if err != nil {
			return err
		}
		slices.SortFunc(iterated, Compare)
		filtered := filterProduct(n, IsDyckPath)
		if !slices.EqualFunc(iterated, filtered, Path.Equal) {
			return fmt.Errorf("CrossCheck: n=%d: %d enumerated vs %d filtered: %w",
				n, len(iterated), len(filtered), ErrGenerationMismatch)
		}

		// 2) primitive enumeration vs filtered subset
		primitive, err := Collect(n, WithPrimitive(true))
		if err != nil {
			return err
		}
		slices.SortFunc(primitive, Compare)
		primitiveFiltered := slices.DeleteFunc(slices.Clone(filtered), func(p Path) bool {
			return !IsPrimitive(p)
		})
		if !slices.EqualFunc(primitive, primitiveFiltered, Path.Equal) {
			return fmt.Errorf("CrossCheck: n=%d primitive: %d enumerated vs %d filtered: %w",
				n, len(primitive), len(primitiveFiltered), ErrGenerationMismatch)
		}
	}

	return nil
}

// filterProduct walks {0..n-1}^n in lexicographic order and keeps the
// sequences accepted by keep. For n = 0 the product is the single empty tuple.
func filterProduct(n int, keep func([]int) bool) []Path {
	var out []Path
	digits := make([]int, n)
	for {
		if keep(digits) {
			out = append(out, Path(slices.Clone(digits)))
		}
		// odometer increment, last digit fastest
		i := n - 1
		for i >= 0 {
			digits[i]++
			if digits[i] < n {
				break
			}
			digits[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
	}
}
