package maze

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazegen/pkg/grid"
)

// Backtracker builds mazes with a randomized depth-first carve.
type Backtracker struct {
	base
}

// NewBacktracker validates cfg and returns a Backtracker generator.
func NewBacktracker(cfg Config) (*Backtracker, error) {
	b, err := newBase(cfg)
	if err != nil {
		return nil, err
	}
	return &Backtracker{base: b}, nil
}

// Algorithm returns AlgorithmBacktrack.
func (b *Backtracker) Algorithm() Algorithm { return AlgorithmBacktrack }

// frame is one level of the depth-first walk: a cell and the neighbours it
// has yet to try, already in shuffled order.
type frame struct {
	cell    grid.Cell
	pending []grid.Neighbor
}

// Generate carves a depth-first spanning tree from the start cell. Obstacle
// cells are pre-marked visited, so the walk never enters them. In regular
// mode every wall the walk left closed, obstacle walls included, is then
// opened with probability LoopProbability.
func (b *Backtracker) Generate(mode Mode) *Maze {
	rng := b.newRand()

	start := b.start()
	visited := mapset.New[grid.Cell]()
	visited.Put(start)
	for _, c := range b.obstacle.Cells() {
		visited.Put(c)
	}

	open := mapset.New[grid.Wall]()
	stack := []frame{b.enter(start, rng)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.pending) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.pending[0]
		top.pending = top.pending[1:]
		if visited.Has(n.Cell) {
			continue
		}
		open.Put(b.topo.CanonicalWall(top.cell, n.Cell))
		visited.Put(n.Cell)
		stack = append(stack, b.enter(n.Cell, rng))
	}

	all := b.topo.AllWalls()
	if mode == Regular {
		for _, w := range all {
			if !open.Has(w) && loop(rng) {
				open.Put(w)
			}
		}
	}

	closed := mapset.New[grid.Wall]()
	for _, w := range all {
		if !open.Has(w) {
			closed.Put(w)
		}
	}
	return b.newMaze(AlgorithmBacktrack, mode, closed)
}

// enter builds the frame for c, shuffling its neighbours on arrival. This
// consumes random numbers in the same order as a recursive walk would.
func (b *Backtracker) enter(c grid.Cell, rng *rand.Rand) frame {
	ns := b.topo.Neighbors(c)
	shuffle(rng, ns)
	return frame{cell: c, pending: ns}
}

// start returns cell 0, or the lowest free cell when the obstacle covers the
// top-left corner (only possible on grids narrower than 9 and shorter than 7).
func (b *Backtracker) start() grid.Cell {
	for c := grid.Cell(0); c < grid.Cell(b.topo.Len()); c++ {
		if !b.obstacle.Contains(c) {
			return c
		}
	}
	return 0
}
