// SPDX-License-Identifier: MIT
// Package: dyck/orientation
//
// errors.go — sentinel errors for the orientation package.
//
// Error policy:
//   • Validate returns exactly one of the validation sentinels below, wrapped
//     with context; the sentinel is the reason code. Match with errors.Is.
//   • IsOrientation never returns an error; any failure is reported as false.
//   • Priority follows the check order: size → index → Dyck path → overlap →
//     exhaustiveness → 3-cycle.

package orientation

import "errors"

// Validation reasons, in check order.
var (
	// ErrNegativeSize indicates a negative row count N.
	ErrNegativeSize = errors.New("orientation: negative size")

	// ErrSizeTooLarge indicates a row count N above MaxSize.
	ErrSizeTooLarge = errors.New("orientation: size too large")

	// ErrIndexOutOfRange indicates a box whose lower row lies outside [0, N).
	ErrIndexOutOfRange = errors.New("orientation: box index out of range")

	// ErrNotDyckPath indicates that counting boxes per row does not give a Dyck path.
	ErrNotDyckPath = errors.New("orientation: boxes do not form a Dyck path")

	// ErrOverlap indicates a box listed both as ascent and as descent.
	ErrOverlap = errors.New("orientation: ascents and descents overlap")

	// ErrNotExhaustive indicates ascents ∪ descents is not exactly the box set
	// of the reconstructed path.
	ErrNotExhaustive = errors.New("orientation: ascents and descents are not exhaustive")

	// ErrThreeCycle indicates a directed 3-cycle among three rows.
	ErrThreeCycle = errors.New("orientation: directed 3-cycle")
)

// Enumeration errors.
var (
	// ErrInvalidPath indicates that the input path is not a Dyck path.
	ErrInvalidPath = errors.New("orientation: invalid path")

	// ErrBadOrdering indicates an ordering that is not a permutation of 0..n-1.
	ErrBadOrdering = errors.New("orientation: ordering is not a permutation")
)
