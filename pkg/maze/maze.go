package maze

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/zyedidia/generic/mapset"

	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
)

// LoopProbability is the chance that regular mode opens an extra wall.
const LoopProbability = 0.05

// Algorithm selects a generator.
type Algorithm string

const (
	AlgorithmKruskal   Algorithm = "kruskal"
	AlgorithmBacktrack Algorithm = "backtrack"
)

// Algorithms lists the supported algorithms.
var Algorithms = []Algorithm{AlgorithmKruskal, AlgorithmBacktrack}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmKruskal, AlgorithmBacktrack:
		return a, nil
	}
	return "", errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %q (must be one of: kruskal, backtrack)", s)
}

// Mode selects perfect (tree) or regular (looped) output.
type Mode string

const (
	Perfect Mode = "perfect"
	Regular Mode = "regular"
)

// Modes lists the supported modes.
var Modes = []Mode{Perfect, Regular}

// ParseMode resolves a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Perfect, Regular:
		return m, nil
	}
	return "", errs.New(errs.ErrCodeInvalidMode, "unknown mode %q (must be one of: perfect, regular)", s)
}

// Config describes the grid a generator works on.
type Config struct {
	Height int
	Width  int
	Seed   uint64

	// Entry and Exit are validated and carried on the result. Carving always
	// starts at cell 0 regardless of Entry.
	Entry grid.Coord
	Exit  grid.Coord
}

// Generator builds mazes for one configuration.
type Generator interface {
	Algorithm() Algorithm
	Generate(mode Mode) *Maze
}

// New returns the generator for algo.
func New(algo Algorithm, cfg Config) (Generator, error) {
	switch algo {
	case AlgorithmKruskal:
		return NewKruskal(cfg)
	case AlgorithmBacktrack:
		return NewBacktracker(cfg)
	}
	return nil, errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %q", algo)
}

// base holds what both generators derive from a Config.
type base struct {
	cfg      Config
	topo     grid.Topology
	obstacle *grid.Obstacle
}

func newBase(cfg Config) (base, error) {
	topo, err := grid.NewTopology(cfg.Height, cfg.Width)
	if err != nil {
		return base{}, err
	}
	if err := errs.ValidateCoord("entry", cfg.Entry.Row, cfg.Entry.Col, cfg.Height, cfg.Width); err != nil {
		return base{}, err
	}
	if err := errs.ValidateCoord("exit", cfg.Exit.Row, cfg.Exit.Col, cfg.Height, cfg.Width); err != nil {
		return base{}, err
	}
	return base{cfg: cfg, topo: topo, obstacle: grid.NewObstacle(topo)}, nil
}

func (b base) newRand() *rand.Rand {
	return rand.New(rand.NewPCG(b.cfg.Seed, b.cfg.Seed^0xdeadbeef))
}

func (b base) newMaze(algo Algorithm, mode Mode, closed mapset.Set[grid.Wall]) *Maze {
	return &Maze{
		Topology:  b.topo,
		Obstacle:  b.obstacle,
		Algorithm: algo,
		Mode:      mode,
		Seed:      b.cfg.Seed,
		Entry:     b.cfg.Entry,
		Exit:      b.cfg.Exit,
		closed:    closed,
	}
}

func shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// loop draws once and reports whether regular mode should open a wall.
func loop(rng *rand.Rand) bool {
	return rng.Float64() < LoopProbability
}

// Maze is a generated maze: its grid, obstacle and the set of closed walls.
// The outer boundary is implicit and always closed.
type Maze struct {
	Topology  grid.Topology
	Obstacle  *grid.Obstacle
	Algorithm Algorithm
	Mode      Mode
	Seed      uint64
	Entry     grid.Coord
	Exit      grid.Coord

	closed mapset.Set[grid.Wall]
}

// IsClosed reports whether interior wall w blocks movement.
func (m *Maze) IsClosed(w grid.Wall) bool {
	return m.closed.Has(w)
}

// ClosedWalls returns the closed interior walls in discovery order.
func (m *Maze) ClosedWalls() []grid.Wall {
	out := make([]grid.Wall, 0, m.closed.Size())
	for _, w := range m.Topology.AllWalls() {
		if m.closed.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// OpenWalls returns the open interior walls in discovery order.
func (m *Maze) OpenWalls() []grid.Wall {
	var out []grid.Wall
	for _, w := range m.Topology.AllWalls() {
		if !m.closed.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Encode converts the maze to its per-cell wall bitmask.
func (m *Maze) Encode() *hexgrid.Grid {
	return hexgrid.FromWalls(m.Topology, m.ClosedWalls())
}

func (m *Maze) String() string {
	return fmt.Sprintf("%s/%s %dx%d seed=%d", m.Algorithm, m.Mode, m.Topology.Height(), m.Topology.Width(), m.Seed)
}
