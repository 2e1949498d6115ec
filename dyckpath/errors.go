// SPDX-License-Identifier: MIT
// Package: dyck/dyckpath
//
// errors.go — sentinel errors for the dyckpath package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w, never baked into the sentinel.
//   • Predicates (IsDyckPath, IsPrimitive) never return errors; they report false.

package dyckpath

import "errors"

// ErrNegativeLength indicates that an enumerator was asked for paths of
// negative length.
var ErrNegativeLength = errors.New("dyckpath: negative length")

// ErrInvalidPath indicates that a sequence does not satisfy the Dyck-path
// constraints (non-negative entries, step bound, trailing zero).
var ErrInvalidPath = errors.New("dyckpath: not a Dyck path")

// ErrParsePath indicates that the textual form of a path could not be read.
var ErrParsePath = errors.New("dyckpath: cannot parse path")

// ErrGenerationMismatch indicates that AllDyckPaths and the brute-force filter
// produced different path lists during CrossCheck.
var ErrGenerationMismatch = errors.New("dyckpath: generation mismatch")
