package reach

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hillclimb/terrain"
)

// Graph is a directed adjacency table keyed by grid coordinate.
// Every cell of the source grid is a key, including cells with no out-edges.
// A Graph is immutable once built and safe for concurrent reads.
type Graph struct {
	adj  map[terrain.Coord]Neighbors
	rows int
	cols int
}

func newGraph(rows, cols int) *Graph {
	return &Graph{
		adj:  make(map[terrain.Coord]Neighbors, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// Build computes the forward reachability graph of grid.
// Each cell gets an edge to every in-bounds orthogonal neighbour it can
// climb onto (see CanReach). The grid is only read.
// Complexity: O(R×C).
func Build(grid *terrain.Grid) *Graph {
	g := newGraph(grid.Rows(), grid.Cols())
	grid.Each(func(from terrain.Coord, cell terrain.Cell) {
		var ns Neighbors
		for _, d := range offsets {
			to := from.Add(d[0], d[1])
			if !grid.InBounds(to) {
				continue
			}
			if CanReach(cell, grid.At(to)) {
				ns.push(to)
			}
		}
		g.adj[from] = ns
	})

	return g
}

// BuildPair computes the forward graph and its inverse in one pass.
// The result is edge-for-edge identical to Build(grid) and Build(grid).Invert().
// Complexity: O(R×C).
func BuildPair(grid *terrain.Grid) (forward, inverse *Graph) {
	forward = newGraph(grid.Rows(), grid.Cols())
	inverse = newGraph(grid.Rows(), grid.Cols())
	grid.Each(func(c terrain.Coord, _ terrain.Cell) {
		forward.adj[c] = Neighbors{}
		inverse.adj[c] = Neighbors{}
	})
	grid.Each(func(from terrain.Coord, cell terrain.Cell) {
		for _, d := range offsets {
			to := from.Add(d[0], d[1])
			if !grid.InBounds(to) || !CanReach(cell, grid.At(to)) {
				continue
			}
			forward.link(from, to)
			inverse.link(to, from)
		}
	})

	return forward, inverse
}

// Invert returns a new graph holding the reverse of every edge in g.
// No elevations are consulted. Panics with ErrCapacity if any node would
// receive more than MaxDegree edges.
// Complexity: O(R×C).
func (g *Graph) Invert() *Graph {
	inv := newGraph(g.rows, g.cols)
	for c := range g.adj {
		inv.adj[c] = Neighbors{}
	}
	for from, ns := range g.adj {
		for i := 0; i < ns.Len(); i++ {
			inv.link(ns.At(i), from)
		}
	}

	return inv
}

// link appends the edge from→to, panicking on overflow.
func (g *Graph) link(from, to terrain.Coord) {
	ns := g.adj[from]
	if !ns.push(to) {
		panic(fmt.Errorf("%w: node %s already has %d edges, adding %s", ErrCapacity, from, MaxDegree, to))
	}
	g.adj[from] = ns
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.adj) }

// Contains reports whether c is a node of g.
func (g *Graph) Contains(c terrain.Coord) bool {
	_, ok := g.adj[c]
	return ok
}

// Out returns the fixed-capacity neighbour list of c (empty if c is unknown).
func (g *Graph) Out(c terrain.Coord) Neighbors { return g.adj[c] }

// Neighbors returns the out-neighbours of c as a slice.
func (g *Graph) Neighbors(c terrain.Coord) []terrain.Coord {
	return g.adj[c].Slice()
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to terrain.Coord) bool {
	return g.adj[from].Contains(to)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, ns := range g.adj {
		n += ns.Len()
	}
	return n
}

// Edges lists every directed edge, sorted by From then To (row-major).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for from, ns := range g.adj {
		for i := 0; i < ns.Len(); i++ {
			out = append(out, Edge{From: from, To: ns.At(i)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}
		return out[i].To.Less(out[j].To)
	})

	return out
}

// Nodes lists every node in row-major order.
func (g *Graph) Nodes() []terrain.Coord {
	out := make([]terrain.Coord, 0, len(g.adj))
	for c := range g.adj {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Equal reports whether g and o have the same nodes and edge sets,
// ignoring slot order.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if len(g.adj) != len(o.adj) {
		return false
	}
	for c, ns := range g.adj {
		other, ok := o.adj[c]
		if !ok || other.Len() != ns.Len() {
			return false
		}
		for i := 0; i < ns.Len(); i++ {
			if !other.Contains(ns.At(i)) {
				return false
			}
		}
	}

	return true
}
