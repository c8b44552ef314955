// Package pipeline runs maze generation end to end for the CLI and the HTTP
// server: options are validated and defaulted, the cache is consulted, the
// maze is generated and encoded, and the encoding is cached and written.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Generate(ctx, pipeline.Options{
//	    Height:    30,
//	    Width:     40,
//	    Seed:      7,
//	    Algorithm: "kruskal",
//	    Mode:      "perfect",
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.Encoded)
//
// [Runner.Execute] additionally writes the encoding to Options.Output, and
// [Runner.Validate] checks an existing encoding.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/cache"
	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
	"github.com/matzehuels/mazegen/pkg/maze"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultHeight is the default number of grid rows.
	DefaultHeight = 50

	// DefaultWidth is the default number of grid columns.
	DefaultWidth = 50

	// DefaultSeed is the default random seed. Zero is a valid seed, so it is
	// not substituted by ValidateAndSetDefaults; callers start from this.
	DefaultSeed = uint64(42)

	// DefaultAlgorithm is the default generator.
	DefaultAlgorithm = maze.AlgorithmBacktrack

	// DefaultMode is the default generation mode.
	DefaultMode = maze.Regular

	// DefaultOutput is the default output file.
	DefaultOutput = "maze.txt"

	// Stdout is the Output value that means standard output.
	Stdout = "-"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options holds every knob of a generation run.
type Options struct {
	Height    int        `json:"height" toml:"height"`
	Width     int        `json:"width" toml:"width"`
	Seed      uint64     `json:"seed" toml:"seed"`
	Algorithm string     `json:"algorithm" toml:"algorithm"`
	Mode      string     `json:"mode" toml:"mode"`
	Entry     grid.Coord `json:"entry" toml:"entry"`
	Exit      grid.Coord `json:"exit" toml:"exit"`
	Output    string     `json:"output,omitempty" toml:"output"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty" toml:"-"`

	Logger *log.Logger `json:"-" toml:"-"`

	validated bool
}

// ValidateAndSetDefaults fills zero fields with defaults, normalizes the
// algorithm and mode names and validates everything. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Algorithm == "" {
		o.Algorithm = string(DefaultAlgorithm)
	}
	if o.Mode == "" {
		o.Mode = string(DefaultMode)
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	algo, err := maze.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return err
	}
	mode, err := maze.ParseMode(o.Mode)
	if err != nil {
		return err
	}
	o.Algorithm, o.Mode = string(algo), string(mode)

	if err := errs.ValidateDimensions(o.Height, o.Width); err != nil {
		return err
	}
	if err := errs.ValidateCoord("entry", o.Entry.Row, o.Entry.Col, o.Height, o.Width); err != nil {
		return err
	}
	if err := errs.ValidateCoord("exit", o.Exit.Row, o.Exit.Col, o.Height, o.Width); err != nil {
		return err
	}
	if err := errs.ValidateOutputPath(o.Output); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// MazeConfig returns the generator configuration.
func (o *Options) MazeConfig() maze.Config {
	return maze.Config{
		Height: o.Height,
		Width:  o.Width,
		Seed:   o.Seed,
		Entry:  o.Entry,
		Exit:   o.Exit,
	}
}

// MazeKeyOpts returns the cache key parameters. Entry and exit do not affect
// the encoding and are left out.
func (o *Options) MazeKeyOpts() cache.MazeKeyOpts {
	return cache.MazeKeyOpts{
		Height:    o.Height,
		Width:     o.Width,
		Seed:      o.Seed,
		Algorithm: o.Algorithm,
		Mode:      o.Mode,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result is the outcome of a generation run.
type Result struct {
	// RunID identifies this run in logs and HTTP responses.
	RunID string

	// Maze is the generated maze. It is nil when the encoding came from the
	// cache.
	Maze *maze.Maze

	// Grid is the wall bitmask matrix.
	Grid *hexgrid.Grid

	// Encoded is the hex text form of Grid.
	Encoded []byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains size and timing information.
type Stats struct {
	Cells        int
	OpenWalls    int
	GenerateTime time.Duration
	WriteTime    time.Duration
}

// CacheInfo records whether the encoding came from the cache.
type CacheInfo struct {
	Hit bool
	Key string
}

// ValidateResult is the outcome of checking an encoding.
type ValidateResult struct {
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Mismatches []hexgrid.Mismatch `json:"mismatches"`
}

// Valid reports whether no mismatches were found.
func (v *ValidateResult) Valid() bool { return len(v.Mismatches) == 0 }
