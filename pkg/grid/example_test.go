package grid_test

import (
	"fmt"

	"github.com/matzehuels/mazegen/pkg/grid"
)

func ExampleObstacle() {
	topo := grid.MustTopology(7, 9)
	o := grid.NewObstacle(topo)

	for r := 0; r < topo.Height(); r++ {
		for c := 0; c < topo.Width(); c++ {
			if o.Contains(topo.Cell(r, c)) {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// .........
	// .#...###.
	// .#.....#.
	// .###.###.
	// ...#.#...
	// ...#.###.
	// .........
}

func ExampleTopology_Neighbors() {
	topo := grid.MustTopology(5, 7)
	for _, n := range topo.Neighbors(topo.Cell(1, 1)) {
		fmt.Println(n.Dir, n.Cell)
	}
	// Output:
	// north 1
	// south 15
	// west 7
	// east 9
}
