package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is a rectangular, immutable matrix of cells.
// cells[r][c] holds the cell at Coord{r, c}.
type Grid struct {
	cells    [][]Cell
	rows     int
	cols     int
	start    Coord
	goal     Coord
	hasStart bool
	hasGoal  bool
}

// Parse decodes a newline-separated grid. Carriage returns and trailing
// blank lines are ignored.
func Parse(text string) (*Grid, error) {
	return ParseLines(strings.Split(text, "\n"))
}

// maxRowBytes caps the length of a single row accepted by Read.
const maxRowBytes = 16 << 20

// Read decodes a grid from r, one row per line. Rows may be up to 16 MiB;
// longer rows fail with a wrapped bufio.ErrTooLong.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain: read: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines decodes one grid row per element of lines.
// A 1×1 grid holding only 'S' treats that cell as the Goal as well, so the
// start-to-goal distance is 0 rather than undefined.
// Returns ErrBadCell (wrapped with the offending position) for unknown
// characters and ErrNonRectangular for ragged rows.
// Complexity: O(R×C).
func ParseLines(lines []string) (*Grid, error) {
	// Drop trailing blank lines so "abc\n" parses as a single row.
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}

	g := &Grid{cells: make([][]Cell, 0, len(lines))}
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]Cell, 0, len(line))
		for c, ch := range []rune(line) {
			cell, err := CellFromRune(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %d,%d", err, ch, r, c)
			}
			switch cell.Role {
			case Start:
				g.start, g.hasStart = Coord{Row: r, Col: c}, true
			case Goal:
				g.goal, g.hasGoal = Coord{Row: r, Col: c}, true
			}
			row = append(row, cell)
		}
		if r > 0 && len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), g.cols)
		}
		g.cols = len(row)
		g.cells = append(g.cells, row)
	}
	g.rows = len(g.cells)
	if g.rows == 1 && g.cols == 1 && g.hasStart && !g.hasGoal {
		g.goal, g.hasGoal = g.start, true
	}

	return g, nil
}

// FromElevations builds a grid from a raw elevation matrix and explicit
// Start and Goal positions. The marker cells keep the elevations given in
// values; roles are assigned by position only.
// start and goal may coincide only on a 1×1 grid; the cell then keeps the
// Start role, which is how ParseLines reads a lone 'S'.
// Returns ErrNonRectangular, ErrBadElevation, or ErrBadCell if a marker lies
// outside the matrix or the markers share a cell of a larger grid.
func FromElevations(values [][]int, start, goal Coord) (*Grid, error) {
	g := &Grid{cells: make([][]Cell, len(values)), rows: len(values)}
	if g.rows > 0 {
		g.cols = len(values[0])
	}
	for r, row := range values {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), g.cols)
		}
		g.cells[r] = make([]Cell, g.cols)
		for c, v := range row {
			if v < MinElevation || v > MaxElevation {
				return nil, fmt.Errorf("%w: %d at %d,%d", ErrBadElevation, v, r, c)
			}
			g.cells[r][c] = Cell{Elevation: v}
		}
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start %s or goal %s outside %dx%d grid", ErrBadCell, start, goal, g.rows, g.cols)
	}
	if start == goal && (g.rows != 1 || g.cols != 1) {
		return nil, fmt.Errorf("%w: start and goal share %s on a %dx%d grid", ErrBadCell, start, g.rows, g.cols)
	}
	g.cells[goal.Row][goal.Col].Role = Goal
	g.cells[start.Row][start.Col].Role = Start
	g.start, g.hasStart = start, true
	g.goal, g.hasGoal = goal, true

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. c must be in bounds.
func (g *Grid) At(c Coord) Cell {
	return g.cells[c.Row][c.Col]
}

// Elevation returns the elevation at c. c must be in bounds.
func (g *Grid) Elevation(c Coord) int {
	return g.cells[c.Row][c.Col].Elevation
}

// Start returns the Start coordinate and whether one was present.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Goal returns the Goal coordinate and whether one was present.
func (g *Grid) Goal() (Coord, bool) { return g.goal, g.hasGoal }

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, cell Cell)) {
	for r, row := range g.cells {
		for c, cell := range row {
			fn(Coord{Row: r, Col: c}, cell)
		}
	}
}

// CellsAt lists, in row-major order, every coordinate whose elevation equals e.
// Marker cells count by their elevation: Start is included for e == MinElevation.
func (g *Grid) CellsAt(e int) []Coord {
	var out []Coord
	g.Each(func(c Coord, cell Cell) {
		if cell.Elevation == e {
			out = append(out, c)
		}
	})

	return out
}

// String renders the grid back to its text form, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteRune(cell.Rune())
		}
	}

	return b.String()
}
