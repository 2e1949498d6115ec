package dyckpath

import (
	"fmt"
	"iter"
	"slices"
)

// Option configures path enumeration.
// Use with AllDyckPaths(n, opts...) and Collect(n, opts...).
type Option func(*Options)

// Options holds the enumeration settings.
type Options struct {
	// Primitive restricts the enumeration to paths that touch the baseline
	// only on their last row. Default false.
	Primitive bool
}

// DefaultOptions returns Options with Primitive = false.
func DefaultOptions() Options {
	return Options{Primitive: false}
}

// WithPrimitive returns an Option that toggles the primitive restriction.
func WithPrimitive(primitive bool) Option {
	return func(o *Options) {
		o.Primitive = primitive
	}
}

// AllDyckPaths returns a lazy sequence over every Dyck path of length n, each
// exactly once, in a deterministic order. The sequence is restartable: every
// range over it re-enumerates from scratch and every yielded Path is a fresh
// slice the caller may keep.
//
// Construction (no post-hoc filtering):
//   - n = 0 yields the empty path, n = 1 yields (0).
//   - n ≥ 2 prepends a head h to every tail of length n-1 (same options),
//     with h in [floor, tail[0]+2), floor = 1 when primitive, else 0.
//
// Returns ErrNegativeLength when n < 0.
// Complexity: O(n) per yielded path amortized, recursion depth n.
func AllDyckPaths(n int, opts ...Option) (iter.Seq[Path], error) {
	if n < 0 {
		return nil, fmt.Errorf("AllDyckPaths(%d): %w", n, ErrNegativeLength)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	floor := 0
	if o.Primitive {
		floor = 1
	}

	return func(yield func(Path) bool) {
		// The recursion builds paths back to front in a shared buffer; each
		// complete path is cloned before it leaves the generator.
		buf := make([]int, n)
		generate(buf, n, floor, func(p []int) bool {
			return yield(Path(slices.Clone(p)))
		})
	}, nil
}

// generate fills buf[len(buf)-n:] with every valid tail of length n and calls
// emit with the whole suffix. It returns false once emit asks to stop.
func generate(buf []int, n, floor int, emit func([]int) bool) bool {
	start := len(buf) - n
	switch n {
	case 0:
		return emit(buf[start:])
	case 1:
		buf[start] = 0
		return emit(buf[start:])
	}

	return generate(buf, n-1, floor, func(tail []int) bool {
		// tail == buf[start+1:], so tail[0] is the next row's height
		for h := floor; h < tail[0]+2; h++ {
			buf[start] = h
			if !emit(buf[start:]) {
				return false
			}
		}
		return true
	})
}

// Collect materializes AllDyckPaths(n, opts...) into a slice.
func Collect(n int, opts ...Option) ([]Path, error) {
	seq, err := AllDyckPaths(n, opts...)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// Catalan returns the n-th Catalan number, the count of Dyck paths of length n.
// Returns 0 for n < 0. Exact for n ≤ 35 on 64-bit ints.
func Catalan(n int) int {
	if n < 0 {
		return 0
	}
	// C(k+1) = C(k)·2(2k+1)/(k+2); the product is always divisible.
	c := 1
	for k := 0; k < n; k++ {
		c = c * 2 * (2*k + 1) / (k + 2)
	}

	return c
}
