package climb

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/reach"
	"github.com/katalvlaran/hillclimb/search"
	"github.com/katalvlaran/hillclimb/terrain"
)

// Forward returns the fewest steps from Start to Goal.
// Returns ErrNoStart or ErrNoGoal if a marker is missing.
func Forward(grid *terrain.Grid, opts ...Option) (Answer, error) {
	return forward(context.Background(), grid, buildOptions(opts))
}

// ReverseMinimum returns the fewest steps from any elevation-0 cell to Goal.
func ReverseMinimum(grid *terrain.Grid, opts ...Option) (Answer, error) {
	return NearestFrom(grid, terrain.MinElevation, opts...)
}

// NearestFrom returns the fewest steps to Goal from any cell of the given
// elevation. Goal is searched once over the inverted graph and the result is
// the minimum over every candidate it reached; no candidates reached means
// Found is false.
func NearestFrom(grid *terrain.Grid, elevation int, opts ...Option) (Answer, error) {
	return nearest(context.Background(), grid, elevation, buildOptions(opts))
}

// Solve runs Forward and ReverseMinimum concurrently.
// The first error cancels the other query.
func Solve(ctx context.Context, grid *terrain.Grid, opts ...Option) (Report, error) {
	o := buildOptions(opts)
	var rep Report
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		a, err := forward(ctx, grid, o)
		rep.Forward = a
		return err
	})
	eg.Go(func() error {
		a, err := nearest(ctx, grid, terrain.MinElevation, o)
		rep.ReverseMinimum = a
		return err
	})
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	return rep, nil
}

func forward(ctx context.Context, grid *terrain.Grid, o Options) (Answer, error) {
	start, ok := grid.Start()
	if !ok {
		return Answer{}, ErrNoStart
	}
	goal, ok := grid.Goal()
	if !ok {
		return Answer{}, ErrNoGoal
	}

	g := reach.Build(grid)
	o.Logger.Debug("built graph", "query", "forward", "nodes", g.Len(), "edges", g.EdgeCount())

	settled := 0
	steps, found, err := search.Target(g, start, goal,
		search.WithContext(ctx),
		search.WithStrategy(o.Strategy),
		search.WithOnSettle(func(terrain.Coord, int) { settled++ }),
	)
	if err != nil {
		return Answer{}, fmt.Errorf("climb: forward search: %w", err)
	}
	o.Logger.Debug("search done", "query", "forward", "settled", settled, "found", found)

	return Answer{Steps: steps, Found: found}, nil
}

func nearest(ctx context.Context, grid *terrain.Grid, elevation int, o Options) (Answer, error) {
	goal, ok := grid.Goal()
	if !ok {
		return Answer{}, ErrNoGoal
	}

	inv := reach.Build(grid).Invert()
	o.Logger.Debug("built inverted graph", "query", "nearest", "nodes", inv.Len(), "edges", inv.EdgeCount())

	dist, err := search.All(inv, goal,
		search.WithContext(ctx),
		search.WithStrategy(o.Strategy),
	)
	if err != nil {
		return Answer{}, fmt.Errorf("climb: reverse search: %w", err)
	}

	candidates := grid.CellsAt(elevation)
	from, steps, found := dist.Min(candidates)
	o.Logger.Debug("search done", "query", "nearest", "elevation", elevation,
		"reached", len(dist), "candidates", len(candidates), "found", found, "from", from)

	return Answer{Steps: steps, Found: found}, nil
}
