// Package orientation validates and enumerates acyclic orientations of the
// boxes under a Dyck path.
//
// An Orientation {N, Ascents, Descents} splits the boxes of some length-N
// Dyck path into ascending and descending pairs. Reading an ascent (i,j) as
// the edge i→j and a descent (i,j) as j→i, the orientation is acyclic when
// no directed cycle exists. Every acyclic orientation arises from a total
// ordering of the rows: box (i,j) ascends iff the ordering places i before j.
//
// Validation (Validate / IsOrientation) runs ordered checks and stops at the
// first failure:
//
//  1. shape: N ≥ 0
//  2. reconstruct the path by counting boxes per lower row (index in range)
//  3. the reconstructed path is a Dyck path
//  4. ascents and descents are disjoint
//  5. their union is exactly the box set of the reconstructed path
//  6. no 3-cycle among rows i<j<k:
//     asc(i,j) ∧ asc(j,k) ∧ desc(i,k)  or  desc(i,j) ∧ desc(j,k) ∧ asc(i,k)
//
// Checking triangles suffices: the box graph of a Dyck path is chordal, so a
// shortest directed cycle is a triangle, and if (i,k) is a box then so are
// (i,j) and (j,k). The tests confirm this exhaustively for small n against the
// general cycle detector of package dfs.
//
// Enumeration (AllOrientations) is brute force over all n! orderings with
// structural deduplication.
//
// Complexity:
//
//   - Validate:        Time O(n³ + |boxes|·log|boxes|), Memory O(n + |boxes|)
//   - AllOrientations: Time O(n!·|boxes|·log|boxes|),   Memory O(#orientations·|boxes|)
//
// Errors:
//
//   - ErrNegativeSize     N < 0
//   - ErrIndexOutOfRange  a box row index outside [0, N)
//   - ErrNotDyckPath      the reconstructed path is not a Dyck path
//   - ErrOverlap          a box is both ascending and descending
//   - ErrNotExhaustive    ascents ∪ descents differs from the boxes of the path
//   - ErrThreeCycle       a directed 3-cycle exists
//   - ErrInvalidPath      AllOrientations/FromOrdering given a non-Dyck path
//   - ErrBadOrdering      FromOrdering given something other than a permutation
package orientation
