package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/reach"
	"github.com/katalvlaran/hillclimb/search"
	"github.com/katalvlaran/hillclimb/terrain"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

var strategies = []search.Strategy{search.Heap, search.Queue}

func mustParse(t testing.TB, text string) *terrain.Grid {
	t.Helper()
	g, err := terrain.Parse(text)
	require.NoError(t, err)
	return g
}

func randomGrid(t testing.TB, seed int64, rows, cols, maxElev int) *terrain.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	values := make([][]int, rows)
	for y := range values {
		values[y] = make([]int, cols)
		for x := range values[y] {
			values[y][x] = r.Intn(maxElev + 1)
		}
	}
	g, err := terrain.FromElevations(values, terrain.Coord{}, terrain.Coord{Row: rows - 1, Col: cols - 1})
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, _, err := search.Target(nil, terrain.Coord{}, terrain.Coord{})
	assert.ErrorIs(t, err, search.ErrNilGraph)

	var typed *reach.Graph
	_, err = search.All(typed, terrain.Coord{})
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

func TestSearch_SourceNotFound(t *testing.T) {
	g := reach.Build(mustParse(t, "ab"))
	_, _, err := search.Target(g, terrain.Coord{Row: 5}, terrain.Coord{})
	assert.ErrorIs(t, err, search.ErrSourceNotFound)
	_, err = search.All(g, terrain.Coord{Col: -1})
	assert.ErrorIs(t, err, search.ErrSourceNotFound)
}

func TestSearch_BadOptions(t *testing.T) {
	g := reach.Build(mustParse(t, "ab"))
	_, err := search.All(g, terrain.Coord{}, search.WithMaxDistance(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.All(g, terrain.Coord{}, search.WithStrategy(search.Strategy(7)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]search.Strategy{"": search.Heap, "heap": search.Heap, "queue": search.Queue, "bfs": search.Queue} {
		got, err := search.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := search.ParseStrategy("astar")
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Equal(t, "queue", search.Queue.String())
}

// ------------------------------------------------------------------------
// 2. Single-target mode
// ------------------------------------------------------------------------

func TestTarget_Sample(t *testing.T) {
	grid := mustParse(t, sample)
	g := reach.Build(grid)
	start, _ := grid.Start()
	goal, _ := grid.Goal()

	for _, s := range strategies {
		d, ok, err := search.Target(g, start, goal, search.WithStrategy(s))
		require.NoError(t, err)
		require.True(t, ok, s.String())
		assert.Equal(t, 31, d, s.String())
	}
}

func TestTarget_SourceIsTarget(t *testing.T) {
	g := reach.Build(mustParse(t, "abc"))
	d, ok, err := search.Target(g, terrain.Coord{Col: 1}, terrain.Coord{Col: 1})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestTarget_Unreachable(t *testing.T) {
	// The 'z' in the middle is ringed by 'a' cells: nothing can climb onto it.
	g := reach.Build(mustParse(t, "aaa\naza\naaa"))
	d, ok, err := search.Target(g, terrain.Coord{}, terrain.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, d)

	// A target that is not a node at all is unreachable too.
	_, ok, err = search.Target(g, terrain.Coord{}, terrain.Coord{Row: 9, Col: 9})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTarget_StopsEarly(t *testing.T) {
	g := reach.Build(mustParse(t, "aaaaaaaaaa"))
	settled := 0
	d, ok, err := search.Target(g, terrain.Coord{}, terrain.Coord{Col: 2},
		search.WithOnSettle(func(terrain.Coord, int) { settled++ }))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, d)
	assert.Equal(t, 3, settled, "search must stop once the target is settled")
}

// ------------------------------------------------------------------------
// 3. All-targets mode
// ------------------------------------------------------------------------

func TestAll_SampleInverted(t *testing.T) {
	grid := mustParse(t, sample)
	inv := reach.Build(grid).Invert()
	goal, _ := grid.Goal()

	dist, err := search.All(inv, goal)
	require.NoError(t, err)
	assert.Equal(t, 0, dist[goal])

	_, best, ok := dist.Min(grid.CellsAt(terrain.MinElevation))
	require.True(t, ok)
	assert.Equal(t, 29, best)
}

func TestAll_PartialMap(t *testing.T) {
	g := reach.Build(mustParse(t, "aaa\naza\naaa"))
	dist, err := search.All(g, terrain.Coord{})
	require.NoError(t, err)
	assert.Len(t, dist, 8)
	_, reached := dist[terrain.Coord{Row: 1, Col: 1}]
	assert.False(t, reached)
	assert.Equal(t, 4, dist[terrain.Coord{Row: 2, Col: 2}])
}

func TestAll_MaxDistance(t *testing.T) {
	g := reach.Build(mustParse(t, "aaaaaa"))
	for _, s := range strategies {
		dist, err := search.All(g, terrain.Coord{}, search.WithMaxDistance(2), search.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, search.Distances{{Col: 0}: 0, {Col: 1}: 1, {Col: 2}: 2}, dist, s.String())
	}
	_, ok, err := search.Target(g, terrain.Coord{}, terrain.Coord{Col: 5}, search.WithMaxDistance(4))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAll_ContextCanceled(t *testing.T) {
	g := reach.Build(mustParse(t, "aaa"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.All(g, terrain.Coord{}, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// TestTargetMatchesAll checks dist_map[target] == Target(source, target)
// for every target of several random grids, under both strategies.
func TestTargetMatchesAll(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		grid := randomGrid(t, seed, 9, 11, 3)
		g := reach.Build(grid)
		src := terrain.Coord{Row: 4, Col: 5}
		all, err := search.All(g, src)
		require.NoError(t, err)

		grid.Each(func(c terrain.Coord, _ terrain.Cell) {
			for _, s := range strategies {
				d, ok, err := search.Target(g, src, c, search.WithStrategy(s))
				require.NoError(t, err)
				want, reached := all[c]
				assert.Equal(t, reached, ok, "seed %d target %s", seed, c)
				if ok {
					assert.Equal(t, want, d, "seed %d target %s", seed, c)
				}
			}
		})
	}
}

func TestSettleOrderMonotonic(t *testing.T) {
	g := reach.Build(randomGrid(t, 99, 30, 30, 4))
	for _, s := range strategies {
		last := -1
		count := 0
		_, err := search.All(g, terrain.Coord{}, search.WithStrategy(s),
			search.WithOnSettle(func(c terrain.Coord, d int) {
				assert.GreaterOrEqual(t, d, last, "%s settled %s at %d after %d", s, c, d, last)
				last = d
				count++
			}))
		require.NoError(t, err)
		assert.Positive(t, count)
	}
}

// TestTieBreakIrrelevant uses a flat field where almost every cell has many
// shortest paths of equal length: the distance must be the Manhattan distance
// regardless of which equal-priority entry the frontier yields first.
func TestTieBreakIrrelevant(t *testing.T) {
	g := reach.Build(mustParse(t, "aaaaaa\naaaaaa\naaaaaa\naaaaaa\naaaaaa"))
	heapDist, err := search.All(g, terrain.Coord{}, search.WithStrategy(search.Heap))
	require.NoError(t, err)
	queueDist, err := search.All(g, terrain.Coord{}, search.WithStrategy(search.Queue))
	require.NoError(t, err)

	assert.Equal(t, heapDist, queueDist)
	for c, d := range heapDist {
		assert.Equal(t, c.Row+c.Col, d, "%s", c)
	}
	// Inverted search from the far corner sees the mirror image.
	back, err := search.All(g.Invert(), terrain.Coord{Row: 4, Col: 5})
	require.NoError(t, err)
	assert.Equal(t, 9, back[terrain.Coord{}])
}

func TestStrategiesAgree(t *testing.T) {
	for seed := int64(40); seed < 45; seed++ {
		g := reach.Build(randomGrid(t, seed, 25, 25, 5))
		a, err := search.All(g, terrain.Coord{}, search.WithStrategy(search.Heap))
		require.NoError(t, err)
		b, err := search.All(g, terrain.Coord{}, search.WithStrategy(search.Queue))
		require.NoError(t, err)
		assert.Equal(t, a, b, "seed %d", seed)
	}
}

func TestDistancesMin(t *testing.T) {
	d := search.Distances{{Row: 0}: 5, {Row: 1}: 3, {Row: 2}: 3}
	c, v, ok := d.Min([]terrain.Coord{{Row: 9}, {Row: 0}, {Row: 2}, {Row: 1}})
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, terrain.Coord{Row: 2}, c, "ties go to the first listed")

	_, _, ok = d.Min([]terrain.Coord{{Row: 7}})
	assert.False(t, ok)
	_, _, ok = d.Min(nil)
	assert.False(t, ok)
}
