// Package terrain parses a height-labelled text grid into elevation cells.
//
// What:
//
//   - Each character of the input is one cell: 'a'..'z' map to elevations 0..25.
//   - 'S' marks the Start cell (elevation 0), 'E' marks the Goal cell (elevation 25).
//   - Grid records the coordinates of the last Start and Goal markers it saw.
//
// Why:
//
//   - The reach package derives a directed graph from the elevations; keeping the
//     parsed grid immutable lets several graphs be built from it concurrently.
//
// Complexity:
//
//   - Parse / ParseLines / Read: O(R×C) time and memory.
//   - At, Elevation, InBounds:   O(1).
//   - CellsAt:                   O(R×C).
//
// Errors:
//
//   - ErrBadCell: a character outside 'a'..'z', 'S', 'E'.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadElevation: FromElevations got a value outside 0..25.
//
// Empty input produces an empty Grid with no Start or Goal; queries must not be run on it.
package terrain
