package grid

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/matzehuels/mazegen/pkg/errors"
)

// Minimum grid size that fits the obstacle glyphs.
const (
	MinHeight = errs.MinHeight
	MinWidth  = errs.MinWidth
)

// Cell is the row-major index of a grid position.
type Cell int

// Coord is the (row, column) form of a cell.
type Coord struct {
	Row int `json:"row" toml:"row"`
	Col int `json:"col" toml:"col"`
}

// String renders the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// ParseCoord parses "row,col". Bounds are not checked.
func ParseCoord(s string) (Coord, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, errs.New(errs.ErrCodeInvalidCoord, "coordinate %q must be row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return Coord{}, errs.New(errs.ErrCodeInvalidCoord, "coordinate %q: bad row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return Coord{}, errs.New(errs.ErrCodeInvalidCoord, "coordinate %q: bad column", s)
	}
	return Coord{Row: row, Col: col}, nil
}

// Dir is a cardinal direction from a cell towards a neighbour.
type Dir uint8

const (
	North Dir = iota
	South
	West
	East
)

func (d Dir) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("Dir(%d)", uint8(d))
}

// Wall is an unordered pair of adjacent cells, stored with A < B.
type Wall struct {
	A, B Cell
}

// Horizontal reports whether the wall separates left/right neighbours
// (as opposed to cells stacked vertically).
func (w Wall) Horizontal() bool {
	return w.B-w.A == 1
}

func (w Wall) String() string {
	return fmt.Sprintf("(%d,%d)", w.A, w.B)
}

// Neighbor is an in-bounds adjacent cell and the direction leading to it.
type Neighbor struct {
	Cell Cell
	Dir  Dir
}

// Topology holds the dimensions of a grid and answers adjacency queries.
// It has no mutable state and may be shared freely.
type Topology struct {
	height, width int
}

// NewTopology returns the topology of a height x width grid. It fails with
// INVALID_DIMENSIONS when the grid is too small for the obstacle.
func NewTopology(height, width int) (Topology, error) {
	if err := errs.ValidateDimensions(height, width); err != nil {
		return Topology{}, err
	}
	return Topology{height: height, width: width}, nil
}

// MustTopology is like NewTopology but panics on invalid dimensions.
// Intended for tests and package-level fixtures.
func MustTopology(height, width int) Topology {
	t, err := NewTopology(height, width)
	if err != nil {
		panic(err)
	}
	return t
}

// Height returns the number of rows.
func (t Topology) Height() int { return t.height }

// Width returns the number of columns.
func (t Topology) Width() int { return t.width }

// Len returns the number of cells.
func (t Topology) Len() int { return t.height * t.width }

// Cell returns the index of (row, col).
func (t Topology) Cell(row, col int) Cell {
	return Cell(row*t.width + col)
}

// Coord returns the position of c.
func (t Topology) Coord(c Cell) Coord {
	return Coord{Row: int(c) / t.width, Col: int(c) % t.width}
}

// Contains reports whether p lies inside the grid.
func (t Topology) Contains(p Coord) bool {
	return p.Row >= 0 && p.Row < t.height && p.Col >= 0 && p.Col < t.width
}

// Neighbors returns the in-bounds neighbours of c in the order north, south,
// west, east.
func (t Topology) Neighbors(c Cell) []Neighbor {
	p := t.Coord(c)
	out := make([]Neighbor, 0, 4)
	if p.Row > 0 {
		out = append(out, Neighbor{Cell: c - Cell(t.width), Dir: North})
	}
	if p.Row < t.height-1 {
		out = append(out, Neighbor{Cell: c + Cell(t.width), Dir: South})
	}
	if p.Col > 0 {
		out = append(out, Neighbor{Cell: c - 1, Dir: West})
	}
	if p.Col < t.width-1 {
		out = append(out, Neighbor{Cell: c + 1, Dir: East})
	}
	return out
}

// Adjacent reports whether a and b share a wall.
func (t Topology) Adjacent(a, b Cell) bool {
	if a > b {
		a, b = b, a
	}
	switch b - a {
	case 1:
		return int(a)/t.width == int(b)/t.width
	case Cell(t.width):
		return true
	}
	return false
}

// CanonicalWall returns the wall between a and b with the lower index first.
// It does not check adjacency.
func (t Topology) CanonicalWall(a, b Cell) Wall {
	if a > b {
		a, b = b, a
	}
	return Wall{A: a, B: b}
}

// AllWalls returns every interior wall in row-major discovery order: for each
// cell, the wall to its east (if any) comes before the wall to its south.
func (t Topology) AllWalls() []Wall {
	walls := make([]Wall, 0, t.WallCount())
	for r := 0; r < t.height; r++ {
		for c := 0; c < t.width; c++ {
			i := t.Cell(r, c)
			if c < t.width-1 {
				walls = append(walls, Wall{A: i, B: i + 1})
			}
			if r < t.height-1 {
				walls = append(walls, Wall{A: i, B: i + Cell(t.width)})
			}
		}
	}
	return walls
}

// WallCount returns the number of interior walls.
func (t Topology) WallCount() int {
	return t.height*(t.width-1) + (t.height-1)*t.width
}
