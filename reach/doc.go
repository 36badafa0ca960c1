// Package reach builds the directed reachability graph of a terrain grid.
//
// What:
//
//   - Build links every cell to each orthogonal neighbour it may step onto:
//     an edge A→B exists iff elevation(B) - elevation(A) <= 1.
//   - Invert flips every edge without re-reading elevations.
//   - BuildPair produces both directions in one pass over the grid.
//
// Why:
//
//   - Climbing is asymmetric: any descent is allowed, ascent is capped at one step.
//     Searching the inverted graph from the goal answers "nearest cell of a given
//     elevation" with a single search instead of one per candidate.
//
// Representation:
//
//   - Each node keeps a fixed four-slot Neighbors array (up, left, down, right).
//     Out-degree can never exceed four on an orthogonal grid; Invert panics with
//     ErrCapacity if it ever would, since that means the graph itself is corrupt.
//
// Complexity:
//
//   - Build, BuildPair, Invert: O(R×C) time and memory.
//   - Neighbors, HasEdge:       O(1).
//   - Edges:                    O(E log E) (sorted output).
package reach
