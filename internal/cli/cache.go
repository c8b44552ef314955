package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the generation cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var f cacheFlags
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached mazes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cc := c.newCache(ctx, f)
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				printInfo("Cache is disabled")
				return nil
			}
			n, err := clearer.Clear(ctx)
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached entries", n)
			switch cc := cc.(type) {
			case *cache.FileCache:
				printDetail("Directory: %s", cc.Dir())
			case *cache.RedisCache:
				printDetail("Redis: %s", cc.Addr())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.redis, "redis", "", "clear the Redis cache at `ADDR`")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}
