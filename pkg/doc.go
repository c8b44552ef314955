// Package pkg holds the mazegen libraries.
//
// # Overview
//
// mazegen builds rectangular grid mazes around a fixed two-glyph obstacle and
// encodes them one hex digit per cell. The libraries are layered:
//
//  1. [dsu] - union-find over cell indices
//  2. [grid] - grid topology, walls and the obstacle pattern
//  3. [maze] - Kruskal and backtracker generators
//  4. [hexgrid] - hex encoding, parsing and wall validation
//  5. [io] - atomic file export and import
//  6. [cache] - file, Redis and null caches for encoded mazes
//  7. [pipeline] - orchestration (validate options, cache, generate, write)
//  8. [server] - HTTP API over the pipeline
//
// # Data Flow
//
//	Options
//	   ↓
//	[pipeline] (defaults + cache lookup)
//	   ↓
//	[maze] generator over [grid] + [dsu]
//	   ↓
//	[hexgrid] encoding
//	   ↓
//	file, stdout or HTTP response
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mazegen/pkg/maze"
//	)
//
//	gen, err := maze.New(maze.AlgorithmKruskal, maze.Config{Height: 20, Width: 30, Seed: 7})
//	if err != nil {
//	    return err
//	}
//	m := gen.Generate(maze.Perfect)
//	text, _ := m.Encode().MarshalText()
//
// [dsu]: github.com/matzehuels/mazegen/pkg/dsu
// [grid]: github.com/matzehuels/mazegen/pkg/grid
// [maze]: github.com/matzehuels/mazegen/pkg/maze
// [hexgrid]: github.com/matzehuels/mazegen/pkg/hexgrid
// [io]: github.com/matzehuels/mazegen/pkg/io
// [cache]: github.com/matzehuels/mazegen/pkg/cache
// [pipeline]: github.com/matzehuels/mazegen/pkg/pipeline
// [server]: github.com/matzehuels/mazegen/pkg/server
package pkg
