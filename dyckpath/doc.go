// Package dyckpath models Dyck paths as height sequences, derives the boxes
// beneath a path, and enumerates every path of a given length.
//
// What:
//
//   - Path: a sequence p of non-negative integers where p[i] counts the boxes
//     strictly above-and-to-the-right of row i. A Path is a Dyck path when
//     p[i] < p[i+1]+2 for all adjacent rows and the last entry is 0.
//   - Box: an ordered pair (I, J) with I < J, the unit cell under the path at
//     column offset J-I from row I.
//   - BoxSet: an immutable, sorted set of boxes with O(1) membership.
//   - BoxCache: an explicit memo of BoxesUnderPath keyed by the exact path.
//   - AllDyckPaths: a lazy, restartable iter.Seq over all paths of length n,
//     optionally restricted to primitive paths.
//
// Example, the five paths of length 3 drawn by render.PathASCII:
//
//	(0,0,0)  /\/\/\
//	(1,0,0)   /\
//	         /\/\/\
//	(2,1,0)    /\
//	          /\/\
//	         /\/\/\
//
// Complexity:
//
//   - IsDyckPath, IsPrimitive: Time O(n), Memory O(1)
//   - BoxesUnderPath:          Time O(n + |boxes|·log|boxes|), Memory O(|boxes|)
//   - AllDyckPaths(n):         Time O(n·C(n)) over the whole sequence, Memory O(n²) recursion
//     (C(n) is the n-th Catalan number)
//
// Errors:
//
//   - ErrNegativeLength      AllDyckPaths/Collect called with n < 0
//   - ErrInvalidPath         NewPath given a sequence that is not a Dyck path
//   - ErrParsePath           ParsePath could not read the textual form
//   - ErrGenerationMismatch  CrossCheck found the enumerator and the filter disagree
package dyckpath
