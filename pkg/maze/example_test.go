package maze_test

import (
	"fmt"

	"github.com/matzehuels/mazegen/pkg/hexgrid"
	"github.com/matzehuels/mazegen/pkg/maze"
)

func ExampleParseAlgorithm() {
	algo, err := maze.ParseAlgorithm("Kruskal")
	fmt.Println(algo, err)

	_, err = maze.ParseAlgorithm("prim")
	fmt.Println(err)
	// Output:
	// kruskal <nil>
	// INVALID_ALGORITHM: unknown algorithm "prim" (must be one of: kruskal, backtrack)
}

func ExampleGenerator() {
	g, err := maze.New(maze.AlgorithmBacktrack, maze.Config{Height: 12, Width: 16, Seed: 42})
	if err != nil {
		panic(err)
	}
	m := g.Generate(maze.Perfect)
	grid := m.Encode()

	fmt.Println(m)
	fmt.Println(grid.Rows(), grid.Cols())
	fmt.Println(len(hexgrid.Validate(grid)), "mismatches")
	// Output:
	// backtrack/perfect 12x16 seed=42
	// 12 16
	// 0 mismatches
}
