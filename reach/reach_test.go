package reach_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/reach"
	"github.com/katalvlaran/hillclimb/terrain"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

// randomGrid builds a deterministic rows×cols grid with elevations in [0,maxElev].
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

func mustParse(t testing.TB, text string) *terrain.Grid {
	t.Helper()
	g, err := terrain.Parse(text)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Elevation rule
//----------------------------------------------------------------------------//

func TestCanReach(t *testing.T) {
	cell := func(e int) terrain.Cell { return terrain.Cell{Elevation: e} }
	assert.True(t, reach.CanReach(cell(3), cell(4)), "ascent of one")
	assert.True(t, reach.CanReach(cell(3), cell(3)), "level")
	assert.True(t, reach.CanReach(cell(25), cell(0)), "any descent")
	assert.False(t, reach.CanReach(cell(3), cell(5)), "ascent of two")
	assert.False(t, reach.CanReach(cell(0), cell(25)), "cliff")
}

// TestBuild_EdgeRule checks every orthogonal pair of several random grids:
// an edge exists exactly when the elevation rule allows it.
func TestBuild_EdgeRule(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		grid := randomGrid(t, seed, 12, 17, 6)
		g := reach.Build(grid)
		require.Equal(t, grid.Rows()*grid.Cols(), g.Len())

		grid.Each(func(from terrain.Coord, cell terrain.Cell) {
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				to := from.Add(d[0], d[1])
				if !grid.InBounds(to) {
					assert.False(t, g.HasEdge(from, to), "edge %s→%s leaves the grid", from, to)
					continue
				}
				want := grid.Elevation(to) <= grid.Elevation(from)+1
				assert.Equal(t, want, g.HasEdge(from, to), "edge %s→%s", from, to)
			}
			assert.LessOrEqual(t, g.Out(from).Len(), reach.MaxDegree)
		})
	}
}

func TestBuild_NoDiagonals(t *testing.T) {
	g := reach.Build(mustParse(t, "aa\naa"))
	assert.False(t, g.HasEdge(terrain.Coord{Row: 0, Col: 0}, terrain.Coord{Row: 1, Col: 1}))
	assert.Equal(t, 8, g.EdgeCount())
}

func TestBuild_Asymmetric(t *testing.T) {
	// 'a' cannot climb to 'c', but 'c' can drop to 'a'.
	g := reach.Build(mustParse(t, "ac"))
	a, c := terrain.Coord{Row: 0, Col: 0}, terrain.Coord{Row: 0, Col: 1}
	assert.False(t, g.HasEdge(a, c))
	assert.True(t, g.HasEdge(c, a))
	assert.Empty(t, g.Neighbors(a))
	assert.True(t, g.Contains(a), "isolated cells are still nodes")
}

func TestBuild_CornerHasTwoCandidates(t *testing.T) {
	g := reach.Build(mustParse(t, "aaa\naaa\naaa"))
	assert.Equal(t, 2, g.Out(terrain.Coord{}).Len())
	assert.Equal(t, 3, g.Out(terrain.Coord{Row: 0, Col: 1}).Len())
	assert.Equal(t, 4, g.Out(terrain.Coord{Row: 1, Col: 1}).Len())
}

func TestBuild_SampleStart(t *testing.T) {
	g := reach.Build(mustParse(t, sample))
	// From S (elevation 0) the 'a' at 0,1 and the 'a' at 1,0 are both reachable.
	assert.ElementsMatch(t,
		[]terrain.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
		g.Neighbors(terrain.Coord{}))
}

//----------------------------------------------------------------------------//
// Inversion
//----------------------------------------------------------------------------//

func TestInvert_ReversesEveryEdge(t *testing.T) {
	g := reach.Build(mustParse(t, sample))
	inv := g.Invert()

	assert.Equal(t, g.Len(), inv.Len())
	assert.Equal(t, g.EdgeCount(), inv.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, inv.HasEdge(e.To, e.From), "missing reversed %s→%s", e.To, e.From)
	}
	for _, e := range inv.Edges() {
		assert.True(t, g.HasEdge(e.To, e.From), "spurious reversed %s→%s", e.From, e.To)
	}
}

func TestInvert_Involutive(t *testing.T) {
	for seed := int64(10); seed < 15; seed++ {
		g := reach.Build(randomGrid(t, seed, 20, 20, 25))
		assert.True(t, g.Equal(g.Invert().Invert()), "seed %d", seed)
		assert.Equal(t, g.Edges(), g.Invert().Invert().Edges())
	}
}

func TestBuildPair_MatchesBuildAndInvert(t *testing.T) {
	for seed := int64(20); seed < 25; seed++ {
		grid := randomGrid(t, seed, 15, 9, 4)
		fwd, inv := reach.BuildPair(grid)
		want := reach.Build(grid)
		assert.True(t, want.Equal(fwd), "forward, seed %d", seed)
		assert.True(t, want.Invert().Equal(inv), "inverse, seed %d", seed)
	}
}

func TestEqual(t *testing.T) {
	a := reach.Build(mustParse(t, "ab\ncd"))
	b := reach.Build(mustParse(t, "ab\ncd"))
	c := reach.Build(mustParse(t, "az\ncd"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(reach.Build(mustParse(t, "ab"))))
	assert.False(t, a.Equal(nil))
}

func TestNodesAndEdgesSorted(t *testing.T) {
	g := reach.Build(mustParse(t, "ab\ncd"))
	assert.Equal(t, []terrain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, g.Nodes())
	edges := g.Edges()
	for i := 1; i < len(edges); i++ {
		prev, cur := edges[i-1], edges[i]
		assert.True(t, prev.From.Less(cur.From) || (prev.From == cur.From && prev.To.Less(cur.To)))
	}
}
