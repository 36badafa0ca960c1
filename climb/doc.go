// Package climb answers the two hill-climbing questions for a terrain grid.
//
//   - Forward: fewest steps from the Start marker to the Goal marker.
//   - ReverseMinimum: fewest steps from any lowest cell (elevation 0) to the Goal,
//     computed as one search from the Goal over the inverted graph.
//
// Solve runs both at once. The grid is read-only; each query builds its own graph,
// so the two never share mutable state.
//
// Unreachable is reported by Answer.Found, never by a zero step count.
package climb
