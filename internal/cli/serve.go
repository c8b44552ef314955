package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/server"
)

type serveFlags struct {
	addr     string
	maxCells int
	cache    cacheFlags
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the maze HTTP API",
		Long: `Serve mazes over HTTP until interrupted.

Routes:
  GET  /healthz
  GET  /v1/maze?height=&width=&seed=&algorithm=&mode=
  POST /v1/validate`,
		Example: `  mazegen serve --addr :9000
  mazegen serve --redis localhost:6379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.addr, "addr", server.DefaultAddr, "listen `ADDR`")
	cmd.Flags().IntVar(&f.maxCells, "max-cells", server.DefaultMaxCells, "largest height*width served")
	addCacheFlags(cmd, &f.cache)

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, f serveFlags) error {
	ctx := cmd.Context()
	changed := cmd.Flags().Changed
	if !changed("addr") && c.config.Server.Addr != "" {
		f.addr = c.config.Server.Addr
	}
	if !changed("max-cells") && c.config.Server.MaxCells > 0 {
		f.maxCells = c.config.Server.MaxCells
	}

	runner := c.newRunner(ctx, f.cache)
	defer runner.Close()

	printInfo("Serving mazes")
	printKeyValue("Address", f.addr)
	printKeyValue("Max cells", fmt.Sprint(f.maxCells))

	srv := server.New(runner, c.Logger, server.Options{MaxCells: f.maxCells})
	return srv.ListenAndServe(ctx, f.addr)
}
