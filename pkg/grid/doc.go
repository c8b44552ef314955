// Package grid models the rectangular cell grid that mazes are carved from.
//
// # Cells and Walls
//
// A [Cell] is the row-major index r*W + c of a position in an H x W grid.
// A [Wall] is the boundary between two adjacent cells, stored canonically with
// the lower index first so that the same physical wall always compares equal:
//
//	t, _ := grid.NewTopology(7, 9)
//	w := t.CanonicalWall(10, 1) // Wall{A: 1, B: 10}
//
// [Topology] enumerates neighbours in a fixed order (north, south, west, east)
// and all interior walls in row-major discovery order. Both orders feed the
// seeded shuffles of the generators, so they are part of the reproducibility
// contract and must not change.
//
// # Obstacle
//
// Every grid embeds a fixed decorative obstacle: two glyphs, 5 rows by 7
// columns in total, centred in the grid. [Obstacle] computes the cells once
// from the dimensions and classifies walls touching those cells as pattern
// walls. Generators never open pattern walls while building the spanning
// structure, so the glyphs render as solid blocks.
//
// The grid must be at least [MinHeight] x [MinWidth] to hold the obstacle.
// Free cells are only guaranteed to form a single region from 7 x 9 upwards;
// on tighter grids the glyphs touch the border and split the free area.
package grid
