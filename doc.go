// Package hillclimb finds the shortest climbs across a height-labelled grid.
//
// What is hillclimb?
//
//	A small, dependency-light toolkit for one question: how few steps does it take
//	to walk a terrain map when each step may climb at most one level?
//		• terrain/ — parse 'a'..'z' / 'S' / 'E' text into an immutable Grid
//		• reach/   — directed reachability graph, its inverse, single-pass pair build
//		• search/  — uniform-cost search: single-target and all-targets modes
//		• climb/   — the two queries (start→goal, best trail) and Solve
//		• render/  — Graphviz DOT/SVG export and a distance heat map
//
// Quick ASCII example:
//
//	Sab      S→a→b is allowed (each step climbs ≤ 1),
//	zyE      a→z is not; z→a is (any descent is fine).
//
// The hillclimb command (cmd/hillclimb) wires these together:
//
//	hillclimb solve input.txt
package hillclimb
