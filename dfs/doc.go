// Package dfs implements depth-first topological sorting and directed cycle
// detection on a core.Graph.
//
// What:
//
//   - TopologicalSort: a linear ordering of vertices such that every edge
//     u→v has u before v; returns ErrCycleDetected when none exists. For an
//     orientation of a Dyck path this ordering is a linear extension: a total
//     ordering of rows that induces the orientation.
//   - DetectCycle: reports whether a directed cycle exists and returns one
//     closed witness [v0, v1, ..., v0].
//   - Levels: the longest-path height of every vertex, i.e. the level layout
//     of an acyclic orientation.
//
// Both traversals use three-color marking (White, Gray, Black); a Gray→Gray
// edge is a back edge and closes a cycle. Vertices are visited in ascending
// order and neighbors in ascending order, so results are deterministic.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E·log d), Memory O(V)
//   - DetectCycle:     Time O(V+E·log d), Memory O(V)
//   - Levels:          Time O(V+E·log d), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  no topological order exists
//   - context.Canceled  traversal canceled via WithCancelContext
package dfs
