package hexgrid

import (
	"fmt"
	"io"

	"github.com/matzehuels/mazegen/pkg/grid"
)

// MismatchKind names the pair of sides that disagree.
type MismatchKind string

const (
	NorthSouth MismatchKind = "North/South"
	EastWest   MismatchKind = "East/West"
)

// Mismatch records two neighbouring cells whose shared wall bits disagree.
// At is the cell being checked and Other the neighbour above it (NorthSouth)
// or to its right (EastWest).
type Mismatch struct {
	Kind  MismatchKind `json:"kind"`
	At    grid.Coord   `json:"at"`
	Other grid.Coord   `json:"other"`
}

// String renders the mismatch with (x,y) = (column,row) coordinates.
func (m Mismatch) String() string {
	return fmt.Sprintf("Error %s at (%d,%d) and (%d,%d)",
		m.Kind, m.At.Col, m.At.Row, m.Other.Col, m.Other.Row)
}

// Validate checks that every pair of neighbouring cells agrees on the wall
// between them: a cell's north bit must equal the south bit of the cell above,
// and its east bit must equal the west bit of the cell to its right.
//
// Cells are scanned row-major and, per cell, the north check runs before the
// east check. All mismatches are returned; an empty result means the grid is
// consistent.
func Validate(g *Grid) []Mismatch {
	var out []Mismatch
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if r > 0 && g.Has(r, c, North) != g.Has(r-1, c, South) {
				out = append(out, Mismatch{
					Kind:  NorthSouth,
					At:    grid.Coord{Row: r, Col: c},
					Other: grid.Coord{Row: r - 1, Col: c},
				})
			}
			if c < g.cols-1 && g.Has(r, c, East) != g.Has(r, c+1, West) {
				out = append(out, Mismatch{
					Kind:  EastWest,
					At:    grid.Coord{Row: r, Col: c},
					Other: grid.Coord{Row: r, Col: c + 1},
				})
			}
		}
	}
	return out
}

// Report writes one line per mismatch to w and returns the number written.
// Write failures are ignored; the report is diagnostic only.
func Report(w io.Writer, mismatches []Mismatch) int {
	for _, m := range mismatches {
		_, _ = fmt.Fprintln(w, m.String())
	}
	return len(mismatches)
}
