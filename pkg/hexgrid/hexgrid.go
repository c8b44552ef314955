// Package hexgrid implements the per-cell wall bitmask encoding of a maze and
// its one-hex-digit-per-cell text form.
//
// Each cell is a 4-bit value, most to least significant bit:
//
//	North = 8, East = 4, South = 2, West = 1
//
// A set bit means the wall on that side is closed. The text form has one line
// per row, top to bottom, each holding one uppercase hex digit per cell, left
// to right, terminated by a newline:
//
//	9515153
//	AC3E96A
//	...
//
// [Validate] re-checks a parsed grid for agreement between neighbouring cells,
// the contract every consumer of the format relies on.
package hexgrid

import (
	"bytes"
	"io"

	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
)

// Side is a single wall bit of a cell.
type Side uint8

const (
	West  Side = 1 << iota // 1
	South                  // 2
	East                   // 4
	North                  // 8
)

const hexDigits = "0123456789ABCDEF"

// Grid is an H x W matrix of 4-bit wall masks.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// New returns a grid with every bit cleared.
func New(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// FromWalls encodes a closed-wall set for an H x W grid.
//
// The outer boundary is always closed. For each wall in closed, the shared
// side is set on both cells: east/west for horizontal pairs, south/north for
// vertical pairs.
func FromWalls(t grid.Topology, closed []grid.Wall) *Grid {
	g := New(t.Height(), t.Width())
	for c := 0; c < g.cols; c++ {
		g.set(0, c, North)
		g.set(g.rows-1, c, South)
	}
	for r := 0; r < g.rows; r++ {
		g.set(r, 0, West)
		g.set(r, g.cols-1, East)
	}
	for _, w := range closed {
		a, b := t.Coord(w.A), t.Coord(w.B)
		if w.Horizontal() {
			g.set(a.Row, a.Col, East)
			g.set(b.Row, b.Col, West)
		} else {
			g.set(a.Row, a.Col, South)
			g.set(b.Row, b.Col, North)
		}
	}
	return g
}

func (g *Grid) set(r, c int, s Side) {
	g.cells[r*g.cols+c] |= uint8(s)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the 4-bit mask of (r, c).
func (g *Grid) At(r, c int) uint8 {
	return g.cells[r*g.cols+c]
}

// Has reports whether side s of (r, c) is closed.
func (g *Grid) Has(r, c int, s Side) bool {
	return g.At(r, c)&uint8(s) != 0
}

// OpenWalls counts the interior walls open on both sides: the east side of
// every cell but the last column and the south side of every cell but the
// last row, checked together with the neighbour's matching side.
func (g *Grid) OpenWalls() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c < g.cols-1 && !g.Has(r, c, East) && !g.Has(r, c+1, West) {
				n++
			}
			if r < g.rows-1 && !g.Has(r, c, South) && !g.Has(r+1, c, North) {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.rows == o.rows && g.cols == o.cols && bytes.Equal(g.cells, o.cells)
}

// MarshalText returns the hex text form.
func (g *Grid) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, hexDigits[g.At(r, c)&0xF])
		}
		buf = append(buf, '\n')
	}
	return buf, nil
}

// WriteTo writes the hex text form to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	data, _ := g.MarshalText()
	n, err := w.Write(data)
	if err != nil {
		return int64(n), errs.Wrap(errs.ErrCodeIO, err, "write maze")
	}
	return int64(n), nil
}

// String returns the hex text form.
func (g *Grid) String() string {
	data, _ := g.MarshalText()
	return string(data)
}
