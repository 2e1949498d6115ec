// Package dyck is a small toolkit for Dyck paths, the boxes beneath them and
// the acyclic orientations of those boxes.
//
// What is a Dyck path here?
//
//	A sequence of non-negative heights (p0, …, pn-1) where each entry is at
//	most one more than the next and the last entry is 0. Row i "reaches"
//	columns i+1 … i+pi; every such pair (i, j) is a box under the path.
//	Orienting every box, i→j (ascent) or j→i (descent), gives a relation on
//	the rows; an orientation is valid when that relation has no directed
//	cycle, which for boxes under a Dyck path means no directed 3-cycle.
//
// Packages:
//
//	dyckpath/    — Path, IsDyckPath, IsPrimitive, BoxesUnderPath, BoxCache,
//	               AllDyckPaths (lazy iter.Seq), Catalan, CrossCheck
//	orientation/ — Orientation, IsOrientation, Validate, AllOrientations,
//	               FromOrdering, LinearExtension, Levels
//	core/        — thread-safe directed graph over rows 0..n-1
//	dfs/         — topological sort, longest-path levels, cycle detection
//	render/      — ascii drawings of paths and orientations (termenv colors)
//	cmd/dyck     — command line tool (cobra): paths, boxes, orientations,
//	               check, draw, selftest, version
//
// Quick ascii example, the path (1, 3, 2, 2, 1, 0):
//
//	     /\
//	    /\/\/\
//	 /\/\/\/\/\
//	/\/\/\/\/\/\
//
//	go install github.com/katalvlaran/dyck/cmd/dyck@latest
package dyck
