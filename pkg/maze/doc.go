// Package maze generates grid mazes around a fixed obstacle.
//
// # Algorithms
//
// Two generators implement [Generator]:
//
//   - [Kruskal] shuffles every wall that does not touch the obstacle and opens
//     each one that joins two previously separate regions (a randomized
//     spanning forest built with [dsu.DSU]).
//   - [Backtracker] walks depth-first from cell 0, opening the wall to each
//     unvisited neighbour in a shuffled order. The walk keeps an explicit
//     stack, so grid size is bounded by memory rather than goroutine stack
//     depth.
//
// # Modes
//
// [Perfect] mazes are spanning trees over the free cells: exactly one path
// between any two of them. [Regular] mazes start from the same tree and open
// extra walls with probability [LoopProbability], adding loops.
//
// The two generators differ in which walls regular mode may open. Kruskal only
// considers walls that would close a cycle among free cells, so obstacle walls
// stay closed in both modes. The backtracker's loop pass draws over every
// interior wall, obstacle walls included, so a regular backtracker maze can
// breach the obstacle. Both behaviours are kept as they are; callers that need
// an intact obstacle in regular mode should use Kruskal.
//
// # Determinism
//
// All random choices come from a PCG source seeded from [Config.Seed] and
// created afresh by each Generate call. The same height, width, seed,
// algorithm and mode always yield the same [Maze]:
//
//	g, err := maze.New(maze.AlgorithmKruskal, maze.Config{Height: 20, Width: 30, Seed: 7})
//	if err != nil {
//	    return err
//	}
//	m := g.Generate(maze.Perfect)
//	text, _ := m.Encode().MarshalText()
package maze
