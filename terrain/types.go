package terrain

import (
	"errors"
	"strconv"
)

// Sentinel errors for terrain parsing.
var (
	// ErrBadCell indicates a character that is not a lowercase letter, 'S' or 'E'.
	ErrBadCell = errors.New("terrain: unrecognized cell character")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrBadElevation indicates an elevation outside [MinElevation, MaxElevation].
	ErrBadElevation = errors.New("terrain: elevation out of range")
)

// Elevation bounds, matching the letters 'a' and 'z'.
const (
	MinElevation = 0
	MaxElevation = 25
)

// Role classifies a cell.
type Role uint8

const (
	// Ordinary is any lowercase-letter cell.
	Ordinary Role = iota
	// Start is the 'S' marker.
	Start
	// Goal is the 'E' marker.
	Goal
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return "ordinary"
	}
}

// Coord identifies a grid cell by row and column. It is comparable and
// safe to use as a map key.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "row,col".
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Add returns c shifted by the given row and column deltas.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Cell is one square of terrain.
type Cell struct {
	Elevation int
	Role      Role
}

// Rune returns the character that CellFromRune would parse into c.
func (c Cell) Rune() rune {
	switch c.Role {
	case Start:
		return 'S'
	case Goal:
		return 'E'
	default:
		return rune('a' + c.Elevation)
	}
}

// CellFromRune decodes a single grid character.
// Returns ErrBadCell for anything outside 'a'..'z', 'S', 'E'.
func CellFromRune(r rune) (Cell, error) {
	switch {
	case r == 'S':
		return Cell{Elevation: MinElevation, Role: Start}, nil
	case r == 'E':
		return Cell{Elevation: MaxElevation, Role: Goal}, nil
	case r >= 'a' && r <= 'z':
		return Cell{Elevation: int(r - 'a'), Role: Ordinary}, nil
	default:
		return Cell{}, ErrBadCell
	}
}
