package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/hexgrid"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a hex-encoded maze for wall mismatches",
		Long: `Check that every pair of neighbouring cells agrees on their shared wall.

Each mismatch is printed on its own line. Use - to read from stdin.`,
		Example: `  mazegen validate maze.txt
  mazegen generate -o - | mazegen validate --strict -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when mismatches are found")
	return cmd
}

func (c *CLI) runValidate(cmd *cobra.Command, path string, strict bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(nil, nil, logger)
	defer runner.Close()

	var (
		res *pipeline.ValidateResult
		err error
	)
	if path == pipeline.Stdout {
		res, err = runner.Validate(ctx, c.in)
	} else {
		res, err = runner.ValidateFile(ctx, path)
	}
	if err != nil {
		return err
	}

	hexgrid.Report(c.out, res.Mismatches)
	prog.done(fmt.Sprintf("Checked %dx%d maze", res.Rows, res.Cols))

	if res.Valid() {
		printSuccess("No wall mismatches")
		return nil
	}
	printWarning("%d wall mismatches", len(res.Mismatches))
	if strict {
		return fmt.Errorf("%d wall mismatches in %s", len(res.Mismatches), path)
	}
	return nil
}
