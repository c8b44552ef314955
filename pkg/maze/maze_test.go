package maze

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazegen/pkg/dsu"
	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
)

// freeStats returns the number of free (non-obstacle) cells, the number of
// open walls between two free cells, and the number of connected regions the
// free cells form through open walls.
func freeStats(m *Maze) (cells, open, regions int) {
	sets := dsu.New(m.Topology.Len())
	for _, w := range m.OpenWalls() {
		if m.Obstacle.Contains(w.A) || m.Obstacle.Contains(w.B) {
			continue
		}
		open++
		sets.Union(int(w.A), int(w.B))
	}
	roots := make(map[int]bool)
	for c := 0; c < m.Topology.Len(); c++ {
		if m.Obstacle.Contains(grid.Cell(c)) {
			continue
		}
		cells++
		roots[sets.Find(c)] = true
	}
	return cells, open, len(roots)
}

func generate(t *testing.T, algo Algorithm, cfg Config, mode Mode) *Maze {
	t.Helper()
	g, err := New(algo, cfg)
	if err != nil {
		t.Fatalf("New(%s, %+v): %v", algo, cfg, err)
	}
	return g.Generate(mode)
}

var spanningSizes = []struct{ h, w int }{
	{7, 9},
	{8, 10},
	{11, 13},
	{20, 31},
	{50, 50},
}

func TestPerfectIsSpanningTree(t *testing.T) {
	for _, algo := range Algorithms {
		for _, size := range spanningSizes {
			for seed := uint64(1); seed <= 5; seed++ {
				name := fmt.Sprintf("%s/%dx%d/seed=%d", algo, size.h, size.w, seed)
				t.Run(name, func(t *testing.T) {
					m := generate(t, algo, Config{Height: size.h, Width: size.w, Seed: seed}, Perfect)
					cells, open, regions := freeStats(m)
					if regions != 1 {
						t.Errorf("free cells form %d regions, want 1", regions)
					}
					if open != cells-1 {
						t.Errorf("open walls = %d, want %d (cells-1)", open, cells-1)
					}
				})
			}
		}
	}
}

func TestRegularExtendsPerfect(t *testing.T) {
	for _, algo := range Algorithms {
		for seed := uint64(1); seed <= 10; seed++ {
			cfg := Config{Height: 30, Width: 40, Seed: seed}
			perfect := generate(t, algo, cfg, Perfect)
			regular := generate(t, algo, cfg, Regular)

			for _, w := range perfect.OpenWalls() {
				if regular.IsClosed(w) {
					t.Fatalf("%s seed %d: tree wall %v closed in regular mode", algo, seed, w)
				}
			}
			_, po, _ := freeStats(perfect)
			_, ro, regions := freeStats(regular)
			if ro < po {
				t.Errorf("%s seed %d: regular open %d < perfect open %d", algo, seed, ro, po)
			}
			if regions != 1 {
				t.Errorf("%s seed %d: regular maze has %d regions", algo, seed, regions)
			}
		}
	}
}

func TestRegularAddsLoops(t *testing.T) {
	for _, algo := range Algorithms {
		cfg := Config{Height: 50, Width: 50, Seed: 42}
		_, po, _ := freeStats(generate(t, algo, cfg, Perfect))
		_, ro, _ := freeStats(generate(t, algo, cfg, Regular))
		if ro <= po {
			t.Errorf("%s: regular open %d, perfect open %d; expected extra loops", algo, ro, po)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, algo := range Algorithms {
		for _, mode := range Modes {
			cfg := Config{Height: 25, Width: 33, Seed: 99}
			g, err := New(algo, cfg)
			if err != nil {
				t.Fatal(err)
			}
			first, _ := g.Generate(mode).Encode().MarshalText()
			again, _ := g.Generate(mode).Encode().MarshalText()
			fresh, _ := generate(t, algo, cfg, mode).Encode().MarshalText()

			if string(first) != string(again) || string(first) != string(fresh) {
				t.Errorf("%s/%s: output differs between runs", algo, mode)
			}

			other, _ := generate(t, algo, Config{Height: 25, Width: 33, Seed: 100}, mode).Encode().MarshalText()
			if string(first) == string(other) {
				t.Errorf("%s/%s: seeds 99 and 100 gave identical mazes", algo, mode)
			}
		}
	}
}

func TestPatternWallsClosed(t *testing.T) {
	cases := []struct {
		algo Algorithm
		mode Mode
	}{
		{AlgorithmKruskal, Perfect},
		{AlgorithmKruskal, Regular},
		{AlgorithmBacktrack, Perfect},
	}
	for _, tc := range cases {
		for _, size := range append(spanningSizes, struct{ h, w int }{5, 7}, struct{ h, w int }{5, 9}) {
			for seed := uint64(0); seed < 8; seed++ {
				m := generate(t, tc.algo, Config{Height: size.h, Width: size.w, Seed: seed}, tc.mode)
				for _, w := range m.Obstacle.Walls() {
					if !m.IsClosed(w) {
						t.Fatalf("%s/%s %dx%d seed %d: pattern wall %v open",
							tc.algo, tc.mode, size.h, size.w, seed, w)
					}
				}
			}
		}
	}
}

func TestBacktrackRegularMayBreachObstacle(t *testing.T) {
	breached := 0
	for seed := uint64(1); seed <= 20; seed++ {
		m := generate(t, AlgorithmBacktrack, Config{Height: 50, Width: 50, Seed: seed}, Regular)
		for _, w := range m.Obstacle.Walls() {
			if !m.IsClosed(w) {
				breached++
				break
			}
		}
	}
	if breached == 0 {
		t.Error("no regular backtracker maze opened a pattern wall across 20 seeds")
	}
}

func TestBoundaryBits(t *testing.T) {
	for _, algo := range Algorithms {
		for _, mode := range Modes {
			g := generate(t, algo, Config{Height: 9, Width: 12, Seed: 3}, mode).Encode()
			for c := 0; c < g.Cols(); c++ {
				if !g.Has(0, c, hexgrid.North) || !g.Has(g.Rows()-1, c, hexgrid.South) {
					t.Errorf("%s/%s: column %d missing north/south boundary", algo, mode, c)
				}
			}
			for r := 0; r < g.Rows(); r++ {
				if !g.Has(r, 0, hexgrid.West) || !g.Has(r, g.Cols()-1, hexgrid.East) {
					t.Errorf("%s/%s: row %d missing west/east boundary", algo, mode, r)
				}
			}
		}
	}
}

func TestEncodedOutputValidates(t *testing.T) {
	m := generate(t, AlgorithmBacktrack, Config{Height: 50, Width: 50, Seed: 42}, Regular)
	text, err := m.Encode().MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var parsed hexgrid.Grid
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if parsed.Rows() != 50 || parsed.Cols() != 50 {
		t.Fatalf("parsed shape %dx%d", parsed.Rows(), parsed.Cols())
	}
	if mismatches := hexgrid.Validate(&parsed); len(mismatches) != 0 {
		t.Errorf("Validate() reported %d mismatches, first: %v", len(mismatches), mismatches[0])
	}
}

func TestSmallestKruskalScenario(t *testing.T) {
	m := generate(t, AlgorithmKruskal, Config{Height: 5, Width: 9, Seed: 1}, Perfect)

	wantCells := []grid.Cell{1, 5, 6, 7, 10, 16, 19, 20, 21, 23, 24, 25, 30, 32, 39, 41, 42, 43}
	if got := m.Obstacle.Cells(); !slices.Equal(got, wantCells) {
		t.Fatalf("obstacle cells = %v, want %v", got, wantCells)
	}
	for _, w := range m.Obstacle.Walls() {
		if !m.IsClosed(w) {
			t.Errorf("pattern wall %v open", w)
		}
	}

	// The glyphs touch the top and bottom rows here and cut the free cells
	// into three regions, so the forest has cells-3 edges.
	cells, open, regions := freeStats(m)
	if cells != 45-18 {
		t.Errorf("free cells = %d, want %d", cells, 45-18)
	}
	if regions != 3 {
		t.Errorf("regions = %d, want 3", regions)
	}
	if open != cells-regions {
		t.Errorf("open walls = %d, want %d", open, cells-regions)
	}
}

func TestBacktrackStartsOutsideObstacle(t *testing.T) {
	// On 5x7 the obstacle covers cell 0.
	m := generate(t, AlgorithmBacktrack, Config{Height: 5, Width: 7, Seed: 11}, Perfect)
	if !m.Obstacle.Contains(0) {
		t.Fatal("expected cell 0 to be an obstacle cell on 5x7")
	}
	for _, w := range m.Obstacle.Walls() {
		if !m.IsClosed(w) {
			t.Errorf("pattern wall %v open", w)
		}
	}
	if len(m.OpenWalls()) == 0 {
		t.Error("nothing was carved")
	}
}

// recursiveCarve is the textbook recursive backtracker, used to check that the
// explicit stack visits cells in the same order.
func recursiveCarve(b *Backtracker) mapset.Set[grid.Wall] {
	rng := b.newRand()
	visited := mapset.New[grid.Cell]()
	visited.Put(0)
	for _, c := range b.obstacle.Cells() {
		visited.Put(c)
	}
	open := mapset.New[grid.Wall]()

	var walk func(grid.Cell)
	walk = func(cur grid.Cell) {
		ns := b.topo.Neighbors(cur)
		shuffle(rng, ns)
		for _, n := range ns {
			if !visited.Has(n.Cell) {
				open.Put(b.topo.CanonicalWall(cur, n.Cell))
				visited.Put(n.Cell)
				walk(n.Cell)
			}
		}
	}
	walk(0)
	return open
}

func TestExplicitStackMatchesRecursion(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		b, err := NewBacktracker(Config{Height: 15, Width: 21, Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		want := recursiveCarve(b)
		m := b.Generate(Perfect)

		got := m.OpenWalls()
		if len(got) != want.Size() {
			t.Fatalf("seed %d: %d open walls, recursive walk opened %d", seed, len(got), want.Size())
		}
		for _, w := range got {
			if !want.Has(w) {
				t.Fatalf("seed %d: wall %v open but not in recursive walk", seed, w)
			}
		}
	}
}

func TestLargeGridDoesNotRecurse(t *testing.T) {
	if testing.Short() {
		t.Skip("large grid")
	}
	m := generate(t, AlgorithmBacktrack, Config{Height: 400, Width: 400, Seed: 5}, Perfect)
	cells, open, regions := freeStats(m)
	if regions != 1 || open != cells-1 {
		t.Errorf("400x400: regions=%d open=%d cells=%d", regions, open, cells)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		code errs.Code
	}{
		{"too short", Config{Height: 4, Width: 9}, errs.ErrCodeInvalidDimensions},
		{"too narrow", Config{Height: 9, Width: 6}, errs.ErrCodeInvalidDimensions},
		{"zero", Config{}, errs.ErrCodeInvalidDimensions},
		{"entry outside", Config{Height: 7, Width: 9, Entry: grid.Coord{Row: 7, Col: 0}}, errs.ErrCodeInvalidCoord},
		{"exit outside", Config{Height: 7, Width: 9, Exit: grid.Coord{Row: 0, Col: -1}}, errs.ErrCodeInvalidCoord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, algo := range Algorithms {
				_, err := New(algo, tt.cfg)
				if !errs.Is(err, tt.code) {
					t.Errorf("New(%s) error = %v, want code %v", algo, err, tt.code)
				}
			}
		})
	}

	if _, err := New("prim", Config{Height: 7, Width: 9}); !errs.Is(err, errs.ErrCodeInvalidAlgorithm) {
		t.Errorf("New(prim) error = %v", err)
	}
}

func TestEntryExitCarried(t *testing.T) {
	cfg := Config{Height: 7, Width: 9, Seed: 2, Entry: grid.Coord{Row: 0, Col: 0}, Exit: grid.Coord{Row: 6, Col: 8}}
	m := generate(t, AlgorithmKruskal, cfg, Perfect)
	if m.Entry != cfg.Entry || m.Exit != cfg.Exit {
		t.Errorf("entry/exit = %v/%v, want %v/%v", m.Entry, m.Exit, cfg.Entry, cfg.Exit)
	}
}

func TestParseAlgorithmAndMode(t *testing.T) {
	algos := []struct {
		in   string
		want Algorithm
		ok   bool
	}{
		{"kruskal", AlgorithmKruskal, true},
		{"Backtrack", AlgorithmBacktrack, true},
		{" KRUSKAL ", AlgorithmKruskal, true},
		{"prim", "", false},
		{"", "", false},
	}
	for _, tt := range algos {
		got, err := ParseAlgorithm(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidAlgorithm) {
			t.Errorf("ParseAlgorithm(%q) code = %v", tt.in, errs.GetCode(err))
		}
	}

	modes := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"perfect", Perfect, true},
		{"Regular", Regular, true},
		{"braided", "", false},
	}
	for _, tt := range modes {
		got, err := ParseMode(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidMode) {
			t.Errorf("ParseMode(%q) code = %v", tt.in, errs.GetCode(err))
		}
	}
}

func TestLoopProbabilityBranch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	hits := 0
	const draws = 100000
	for i := 0; i < draws; i++ {
		if loop(rng) {
			hits++
		}
	}
	// 5% of 100000 with a generous tolerance.
	if hits < 4000 || hits > 6000 {
		t.Errorf("loop() fired %d times in %d draws", hits, draws)
	}
}
