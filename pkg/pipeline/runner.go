package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/observability"
)

// cacheKeyType labels maze entries in cache hooks.
const cacheKeyType = "maze"

// Runner runs generations against a cache.
//
// A Runner holds no per-run state, so one Runner may serve many goroutines
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached encodings. Zero keeps them forever.
	TTL time.Duration
}

// NewRunner returns a runner caching for cache.TTLMaze. A nil keyer means
// cache.DefaultKeyer, a nil cache disables caching and a nil logger means
// log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLMaze,
	}
}

// Execute generates a maze and writes its encoding to opts.Output. Output
// "-" is rejected here; callers that stream to stdout use Generate and write
// Result.Encoded themselves.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	res, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	writeStart := time.Now()
	if err := mazeio.ExportHex(res.Grid, opts.Output); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	res.Stats.WriteTime = time.Since(writeStart)

	opts.Logger.Info("wrote maze",
		"path", opts.Output,
		"run", res.RunID,
		"duration", res.Stats.WriteTime)
	return res, nil
}

// Generate returns the encoding for opts, from the cache when possible.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString()}
	res.CacheInfo.Key = r.Keyer.MazeKey(opts.MazeKeyOpts())
	logger := opts.Logger.With("run", res.RunID)

	if !opts.Refresh {
		if g, ok := r.lookup(ctx, res.CacheInfo.Key, logger); ok {
			res.Grid = g
			res.Encoded, _ = g.MarshalText()
			res.Stats.Cells = g.Rows() * g.Cols()
			res.Stats.OpenWalls = g.OpenWalls()
			res.CacheInfo.Hit = true
			logger.Info("loaded maze from cache",
				"height", opts.Height,
				"width", opts.Width,
				"algorithm", opts.Algorithm,
				"mode", opts.Mode,
				"seed", opts.Seed)
			return res, nil
		}
	}

	hooks := observability.Generate()
	hooks.OnGenerateStart(ctx, opts.Algorithm, opts.Mode, opts.Height, opts.Width)
	start := time.Now()

	gen, err := maze.New(maze.Algorithm(opts.Algorithm), opts.MazeConfig())
	if err != nil {
		hooks.OnGenerateComplete(ctx, opts.Algorithm, opts.Mode, 0, time.Since(start), err)
		return nil, fmt.Errorf("generate: %w", err)
	}
	m := gen.Generate(maze.Mode(opts.Mode))
	res.Maze = m
	res.Grid = m.Encode()
	res.Encoded, _ = res.Grid.MarshalText()
	res.Stats.Cells = m.Topology.Len()
	res.Stats.OpenWalls = len(m.OpenWalls())
	res.Stats.GenerateTime = time.Since(start)
	hooks.OnGenerateComplete(ctx, opts.Algorithm, opts.Mode, res.Stats.OpenWalls, res.Stats.GenerateTime, nil)

	logger.Info("generated maze",
		"height", opts.Height,
		"width", opts.Width,
		"algorithm", opts.Algorithm,
		"mode", opts.Mode,
		"seed", opts.Seed,
		"open_walls", res.Stats.OpenWalls,
		"duration", res.Stats.GenerateTime)

	if err := r.Cache.Set(ctx, res.CacheInfo.Key, res.Encoded, r.TTL); err != nil {
		logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(res.Encoded))
	}
	return res, nil
}

// lookup reads and parses a cached encoding. Backend errors and unparsable
// entries count as misses.
func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (*hexgrid.Grid, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	var g hexgrid.Grid
	if err := g.UnmarshalText(data); err != nil {
		logger.Debug("discarding corrupt cache entry", "key", key, "error", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return &g, true
}

// Validate parses an encoding from src and checks neighbouring cells for
// agreement. Malformed input is an error; mismatches are not.
func (r *Runner) Validate(ctx context.Context, src io.Reader) (*ValidateResult, error) {
	g, err := hexgrid.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return r.check(ctx, g), nil
}

// ValidateFile is Validate for a file path.
func (r *Runner) ValidateFile(ctx context.Context, path string) (*ValidateResult, error) {
	g, err := mazeio.ImportHex(path)
	if err != nil {
		return nil, err
	}
	return r.check(ctx, g), nil
}

func (r *Runner) check(ctx context.Context, g *hexgrid.Grid) *ValidateResult {
	res := &ValidateResult{
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Mismatches: hexgrid.Validate(g),
	}
	if res.Mismatches == nil {
		res.Mismatches = []hexgrid.Mismatch{}
	}
	observability.Generate().OnValidate(ctx, res.Rows, res.Cols, len(res.Mismatches))
	r.Logger.Debug("validated maze",
		"rows", res.Rows,
		"cols", res.Cols,
		"mismatches", len(res.Mismatches))
	return res
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
