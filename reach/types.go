package reach

import (
	"errors"

	"github.com/katalvlaran/hillclimb/terrain"
)

// ErrCapacity is the panic value (wrapped) raised when a node would receive
// more than MaxDegree edges. It signals a corrupt graph, not bad input.
var ErrCapacity = errors.New("reach: neighbor capacity exceeded")

// MaxDegree is the out-degree bound of an orthogonal grid graph.
const MaxDegree = 4

// offsets lists the orthogonal steps in slot order: up, left, down, right.
var offsets = [MaxDegree][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Neighbors is the fixed-capacity out-edge list of a single node.
// The zero value is an empty list.
type Neighbors struct {
	to [MaxDegree]terrain.Coord
	n  uint8
}

// Len returns the number of stored neighbours.
func (ns Neighbors) Len() int { return int(ns.n) }

// At returns the i-th neighbour; i must be in [0, Len()).
func (ns Neighbors) At(i int) terrain.Coord { return ns.to[i] }

// Slice returns the neighbours as a new slice.
func (ns Neighbors) Slice() []terrain.Coord {
	out := make([]terrain.Coord, ns.n)
	copy(out, ns.to[:ns.n])
	return out
}

// Contains reports whether c is one of the neighbours.
func (ns Neighbors) Contains(c terrain.Coord) bool {
	for i := 0; i < int(ns.n); i++ {
		if ns.to[i] == c {
			return true
		}
	}
	return false
}

// push appends c, returning false when the list is already full.
func (ns *Neighbors) push(c terrain.Coord) bool {
	if int(ns.n) == MaxDegree {
		return false
	}
	ns.to[ns.n] = c
	ns.n++
	return true
}

// Edge is a directed step From → To.
type Edge struct {
	From, To terrain.Coord
}

// CanReach reports whether a climber standing on from may step onto to:
// any descent, a level step, or an ascent of exactly one.
func CanReach(from, to terrain.Cell) bool {
	return to.Elevation-from.Elevation <= 1
}
