package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/terrain"
)

// Sentinel errors returned by Target and All.
var (
	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrSourceNotFound indicates that the source is not a node of the graph.
	ErrSourceNotFound = errors.New("search: source not found in graph")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Graph is the read-only adjacency view a search walks.
// *reach.Graph satisfies it.
type Graph interface {
	Contains(c terrain.Coord) bool
	Neighbors(c terrain.Coord) []terrain.Coord
}

// Strategy selects the frontier discipline.
type Strategy int

const (
	// Heap orders the frontier by tentative distance.
	Heap Strategy = iota
	// Queue visits the frontier first-in first-out.
	Queue
)

// String returns the strategy name as used in configuration files.
func (s Strategy) String() string {
	switch s {
	case Heap:
		return "heap"
	case Queue:
		return "queue"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts "heap" or "queue" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "heap":
		return Heap, nil
	case "queue", "bfs":
		return Queue, nil
	default:
		return Heap, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Options configures a search.
type Options struct {
	Ctx         context.Context
	MaxDistance int
	OnSettle    func(c terrain.Coord, dist int)
	Strategy    Strategy

	err error
}

// Option is a functional option for Target and All.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - context.Background()
//   - no distance cap (math.MaxInt)
//   - no-op OnSettle
//   - Heap strategy
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt,
		OnSettle:    func(terrain.Coord, int) {},
		Strategy:    Heap,
	}
}

// WithContext sets a context checked once per frontier pop, stale heap
// entries included.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance stops settling nodes beyond n steps. Negative n is
// reported as ErrOptionViolation.
func WithMaxDistance(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDistance = n
	}
}

// WithOnSettle registers a callback run each time a node's distance becomes final.
func WithOnSettle(fn func(c terrain.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithStrategy selects the frontier discipline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Heap && s != Queue {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// Distances maps each reached node to its shortest step count from the source.
type Distances map[terrain.Coord]int

// Min returns the closest of the given coordinates that appears in d.
// Ties go to the coordinate listed first. ok is false when none was reached.
func (d Distances) Min(coords []terrain.Coord) (best terrain.Coord, dist int, ok bool) {
	for _, c := range coords {
		v, reached := d[c]
		if !reached {
			continue
		}
		if !ok || v < dist {
			best, dist, ok = c, v, true
		}
	}
	return best, dist, ok
}
