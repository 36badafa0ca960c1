package climb

import (
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hillclimb/search"
)

// Sentinel errors for queries on grids missing a marker (including empty grids).
var (
	ErrNoStart = errors.New("climb: grid has no start cell")
	ErrNoGoal  = errors.New("climb: grid has no goal cell")
)

// Answer is the outcome of a query: a step count, or unreachable.
type Answer struct {
	Steps int
	Found bool
}

// String returns the step count, or "unreachable".
func (a Answer) String() string {
	if !a.Found {
		return "unreachable"
	}
	return strconv.Itoa(a.Steps)
}

// Report holds the answers of both queries.
type Report struct {
	Forward        Answer
	ReverseMinimum Answer
}

// Options configures the query layer.
type Options struct {
	Logger   *log.Logger
	Strategy search.Strategy
}

// Option is a functional option for the queries.
type Option func(*Options)

// WithLogger routes debug output (graph sizes, settle counts) to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrategy selects the search frontier discipline.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

func buildOptions(opts []Option) Options {
	o := Options{Logger: log.New(io.Discard), Strategy: search.Heap}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
