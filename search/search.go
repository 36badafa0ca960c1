package search

import (
	"container/heap"
	"reflect"

	"github.com/katalvlaran/hillclimb/terrain"
)

// Target returns the shortest step count from source to target.
// ok is false when the frontier empties (or the distance cap is hit) before
// target is settled; that is a normal outcome, not an error.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrOptionViolation).
//  2. g is non-nil (ErrNilGraph).
//  3. g contains source (ErrSourceNotFound).
//
// A target that is not a node of g is simply unreachable.
func Target(g Graph, source, target terrain.Coord, opts ...Option) (dist int, ok bool, err error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return 0, false, err
	}
	r.target, r.single = target, true
	if err = r.run(); err != nil {
		return 0, false, err
	}
	if !r.found {
		return 0, false, nil
	}

	return r.dist[target], true, nil
}

// All returns the shortest step count from source to every node it reaches.
// Unreached nodes are absent from the map; the source maps to 0.
// Validation matches Target.
func All(g Graph, source terrain.Coord, opts ...Option) (Distances, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	// Entries beyond MaxDistance may have been relaxed but never settled.
	for c := range r.dist {
		if !r.settled[c] {
			delete(r.dist, c)
		}
	}

	return r.dist, nil
}

// runner holds the mutable state of one search.
type runner struct {
	g       Graph
	opts    Options
	source  terrain.Coord
	target  terrain.Coord
	single  bool                   // stop once target is settled
	found   bool                   // target was settled
	dist    Distances              // best known distance; Frontier ∪ Settled
	settled map[terrain.Coord]bool // final distances
	pq      nodePQ                 // Heap frontier
	queue   []nodeItem             // Queue frontier
}

func newRunner(g Graph, source terrain.Coord, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if isNil(g) {
		return nil, ErrNilGraph
	}
	if !g.Contains(source) {
		return nil, ErrSourceNotFound
	}

	return &runner{
		g:       g,
		opts:    cfg,
		source:  source,
		dist:    make(Distances),
		settled: make(map[terrain.Coord]bool),
	}, nil
}

// run seeds the frontier with the source and settles nodes until the
// target is found or the frontier is exhausted.
func (r *runner) run() error {
	r.dist[r.source] = 0
	r.push(nodeItem{at: r.source, dist: 0})

	for r.pending() {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the closest frontier node; skip stale duplicates.
		item := r.pop()
		if r.settled[item.at] {
			continue
		}
		// 2) Everything left is at least this far away.
		if item.dist > r.opts.MaxDistance {
			break
		}

		// 3) Its distance is now final.
		r.settled[item.at] = true
		r.opts.OnSettle(item.at, item.dist)
		if r.single && item.at == r.target {
			r.found = true
			return nil
		}

		// 4) Relax outgoing unit edges.
		r.relax(item)
	}

	return nil
}

// relax offers item.dist+1 to every neighbour, keeping it only when strictly
// better than what is already known.
func (r *runner) relax(item nodeItem) {
	next := item.dist + 1
	for _, v := range r.g.Neighbors(item.at) {
		if best, seen := r.dist[v]; seen && next >= best {
			continue
		}
		r.dist[v] = next
		r.push(nodeItem{at: v, dist: next})
	}
}

func (r *runner) pending() bool {
	if r.opts.Strategy == Queue {
		return len(r.queue) > 0
	}
	return r.pq.Len() > 0
}

func (r *runner) push(item nodeItem) {
	if r.opts.Strategy == Queue {
		r.queue = append(r.queue, item)
		return
	}
	heap.Push(&r.pq, item)
}

func (r *runner) pop() nodeItem {
	if r.opts.Strategy == Queue {
		item := r.queue[0]
		r.queue = r.queue[1:]
		return item
	}
	return heap.Pop(&r.pq).(nodeItem)
}

// isNil catches both a nil interface and a typed nil pointer such as (*reach.Graph)(nil).
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// nodeItem is a frontier entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	at   terrain.Coord
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist.
// Ties are broken arbitrarily; any equal-length path is as good as another.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
