package grid

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Obstacle bounding box.
const (
	obstacleRows = 5
	obstacleCols = 7
	glyphGap     = 4 // column offset of the second glyph
)

// Glyph rows as column offsets relative to each glyph's left edge.
var (
	glyphA = [obstacleRows][]int{
		{0},
		{0},
		{0, 1, 2},
		{2},
		{2},
	}
	glyphB = [obstacleRows][]int{
		{0, 1, 2},
		{2},
		{0, 1, 2},
		{0},
		{0, 1, 2},
	}
)

// Obstacle is the fixed set of cells forming the decorative glyphs in the
// middle of the grid, together with the walls touching them.
type Obstacle struct {
	topo  Topology
	cells mapset.Set[Cell]
	top   int
	left  int
}

// NewObstacle places the glyphs for t. The top-left corner of the bounding
// box is ((H-5)/2, (W-7)/2).
func NewObstacle(t Topology) *Obstacle {
	o := &Obstacle{
		topo:  t,
		cells: mapset.New[Cell](),
		top:   (t.Height() - obstacleRows) / 2,
		left:  (t.Width() - obstacleCols) / 2,
	}
	o.stamp(glyphA, o.left)
	o.stamp(glyphB, o.left+glyphGap)
	return o
}

func (o *Obstacle) stamp(glyph [obstacleRows][]int, left int) {
	for i, cols := range glyph {
		for _, dc := range cols {
			o.cells.Put(o.topo.Cell(o.top+i, left+dc))
		}
	}
}

// Origin returns the top-left corner of the obstacle's bounding box.
func (o *Obstacle) Origin() Coord {
	return Coord{Row: o.top, Col: o.left}
}

// Len returns the number of obstacle cells.
func (o *Obstacle) Len() int { return o.cells.Size() }

// Contains reports whether c is an obstacle cell.
func (o *Obstacle) Contains(c Cell) bool { return o.cells.Has(c) }

// Cells returns the obstacle cells in ascending order.
func (o *Obstacle) Cells() []Cell {
	out := make([]Cell, 0, o.cells.Size())
	o.cells.Each(func(c Cell) {
		out = append(out, c)
	})
	slices.Sort(out)
	return out
}

// IsPatternWall reports whether either side of w is an obstacle cell.
func (o *Obstacle) IsPatternWall(w Wall) bool {
	return o.cells.Has(w.A) || o.cells.Has(w.B)
}

// Walls returns the pattern walls in AllWalls order.
func (o *Obstacle) Walls() []Wall {
	var out []Wall
	for _, w := range o.topo.AllWalls() {
		if o.IsPatternWall(w) {
			out = append(out, w)
		}
	}
	return out
}
