package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazegen/pkg/dsu"
	"github.com/matzehuels/mazegen/pkg/grid"
)

// Kruskal builds mazes as randomized spanning forests over the free cells.
type Kruskal struct {
	base
}

// NewKruskal validates cfg and returns a Kruskal generator.
func NewKruskal(cfg Config) (*Kruskal, error) {
	b, err := newBase(cfg)
	if err != nil {
		return nil, err
	}
	return &Kruskal{base: b}, nil
}

// Algorithm returns AlgorithmKruskal.
func (k *Kruskal) Algorithm() Algorithm { return AlgorithmKruskal }

// Generate shuffles the non-obstacle walls and opens every wall that joins two
// separate regions. A wall that would close a cycle stays closed, except that
// regular mode opens it with probability LoopProbability. Obstacle walls are
// never candidates and are always closed.
func (k *Kruskal) Generate(mode Mode) *Maze {
	rng := k.newRand()

	all := k.topo.AllWalls()
	candidates := make([]grid.Wall, 0, len(all))
	for _, w := range all {
		if !k.obstacle.IsPatternWall(w) {
			candidates = append(candidates, w)
		}
	}
	shuffle(rng, candidates)

	sets := dsu.New(k.topo.Len())
	closed := mapset.New[grid.Wall]()
	for _, w := range candidates {
		if sets.Union(int(w.A), int(w.B)) {
			continue
		}
		if mode == Regular && loop(rng) {
			continue
		}
		closed.Put(w)
	}
	for _, w := range k.obstacle.Walls() {
		closed.Put(w)
	}

	return k.newMaze(AlgorithmKruskal, mode, closed)
}
