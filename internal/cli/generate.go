package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

// spinnerCells is the grid size from which generate shows a spinner.
const spinnerCells = 250_000

type generateFlags struct {
	height    int
	width     int
	seed      uint64
	algorithm string
	mode      string
	entry     string
	exit      string
	output    string
	cache     cacheFlags
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze",
		Long: `Generate a maze and write its hex encoding.

Each output line is one grid row; each character is one cell's closed walls
as a hex digit (North=8, East=4, South=2, West=1). Use -o - for stdout.`,
		Example: `  mazegen generate
  mazegen generate -H 20 -W 30 --seed 7 -a kruskal -m perfect -o small.txt
  mazegen generate -o - | mazegen validate -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.generateOptions(cmd, &f)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd, opts, f.cache)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.height, "height", "H", pipeline.DefaultHeight, "grid rows")
	flags.IntVarP(&f.width, "width", "W", pipeline.DefaultWidth, "grid columns")
	flags.Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed")
	flags.StringVarP(&f.algorithm, "algorithm", "a", string(pipeline.DefaultAlgorithm), "generator: kruskal, backtrack")
	flags.StringVarP(&f.mode, "mode", "m", string(pipeline.DefaultMode), "mode: perfect, regular")
	flags.StringVar(&f.entry, "entry", "", "entry cell as `ROW,COL`")
	flags.StringVar(&f.exit, "exit", "", "exit cell as `ROW,COL`")
	flags.StringVarP(&f.output, "output", "o", pipeline.DefaultOutput, "output `FILE` (- for stdout)")
	flags.BoolVar(&f.cache.refresh, "refresh", false, "regenerate even when cached")
	addCacheFlags(cmd, &f.cache)

	return cmd
}

// generateOptions merges flags over the config file. A flag counts only when
// set on the command line; otherwise a configured value replaces its default.
func (c *CLI) generateOptions(cmd *cobra.Command, f *generateFlags) (pipeline.Options, error) {
	changed := cmd.Flags().Changed
	cfg := c.config

	if !changed("height") && cfg.Height != 0 {
		f.height = cfg.Height
	}
	if !changed("width") && cfg.Width != 0 {
		f.width = cfg.Width
	}
	if !changed("seed") && cfg.Seed != nil {
		f.seed = *cfg.Seed
	}
	if !changed("algorithm") && cfg.Algorithm != "" {
		f.algorithm = cfg.Algorithm
	}
	if !changed("mode") && cfg.Mode != "" {
		f.mode = cfg.Mode
	}
	if !changed("output") && cfg.Output != "" {
		f.output = cfg.Output
	}
	// Explicit zeros would otherwise be replaced by the defaults.
	if changed("height") || changed("width") {
		if err := errs.ValidateDimensions(f.height, f.width); err != nil {
			return pipeline.Options{}, err
		}
	}

	opts := pipeline.Options{
		Height:    f.height,
		Width:     f.width,
		Seed:      f.seed,
		Algorithm: f.algorithm,
		Mode:      f.mode,
		Output:    f.output,
		Refresh:   f.cache.refresh,
		Logger:    c.Logger,
	}

	var err error
	if f.entry != "" {
		if opts.Entry, err = grid.ParseCoord(f.entry); err != nil {
			return opts, err
		}
	}
	if f.exit != "" {
		if opts.Exit, err = grid.ParseCoord(f.exit); err != nil {
			return opts, err
		}
	}
	return opts, opts.ValidateAndSetDefaults()
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts pipeline.Options, cf cacheFlags) error {
	ctx := cmd.Context()
	runner := c.newRunner(ctx, cf)
	defer runner.Close()

	if opts.Output == pipeline.Stdout {
		res, err := runner.Generate(ctx, opts)
		if err != nil {
			return err
		}
		_, err = c.out.Write(res.Encoded)
		return err
	}

	stop := func() {}
	if opts.Height*opts.Width >= spinnerCells {
		s := newSpinner(ctx, os.Stderr, fmt.Sprintf("Generating %dx%d maze...", opts.Height, opts.Width))
		s.Start()
		stop = s.Stop
	}
	res, err := runner.Execute(ctx, opts)
	stop()
	if err != nil {
		return err
	}

	printSuccess("Generated %dx%d %s maze (%s, seed %d)", opts.Height, opts.Width, opts.Algorithm, opts.Mode, opts.Seed)
	printMazeStats(res.Stats.Cells, res.Stats.OpenWalls, res.CacheInfo.Hit)
	printFile(opts.Output)
	return nil
}
