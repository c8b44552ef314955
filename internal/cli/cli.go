// Package cli implements the mazegen command-line interface.
//
// # Commands
//
//   - generate: build a maze and write its hex encoding to a file or stdout
//   - validate: check a hex-encoded maze for inconsistent neighbouring walls
//   - serve: run the HTTP API
//   - cache: clear or locate the generation cache
//   - config: create, locate or print the config file
//
// # Configuration
//
// Defaults come from a TOML file at $XDG_CONFIG_HOME/mazegen/config.toml
// (or ~/.config/mazegen/config.toml, or --config). Flags set on the command
// line win over the file.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) enables debug
// output. The logger also travels on the command context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/buildinfo"
	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/observability"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName names the binary and its config and cache directories.
const appName = "mazegen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives maze data and validation reports; in is read by
	// "validate -".
	out io.Writer
	in  io.Reader

	configPath string
	config     Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		in:     os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Generate and validate grid mazes",
		Long: `mazegen builds rectangular grid mazes around a fixed obstacle pattern and
writes them as one hex digit per cell (North=8, East=4, South=2, West=1).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mazegen/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and attaches the logger to the command
// context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg

	observability.SetCacheHooks(logHooks{logger: c.Logger})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags are the cache switches shared by generate and serve.
type cacheFlags struct {
	noCache bool
	refresh bool
	redis   string
}

func addCacheFlags(cmd *cobra.Command, f *cacheFlags) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the generation cache")
	cmd.Flags().StringVar(&f.redis, "redis", "", "use the Redis server at `ADDR` as cache")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f cacheFlags) *pipeline.Runner {
	r := pipeline.NewRunner(c.newCache(ctx, f), nil, c.Logger)
	if ttl := c.config.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r
}

// newCache picks the cache backend: none when disabled, Redis when an
// address is given and reachable, the file cache otherwise.
func (c *CLI) newCache(ctx context.Context, f cacheFlags) cache.Cache {
	if f.noCache || c.config.Cache.Disabled {
		return cache.NewNullCache()
	}

	addr := f.redis
	if addr == "" {
		addr = c.config.Cache.RedisAddr
	}
	if addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: addr})
		if err == nil {
			c.Logger.Debug("using redis cache", "addr", addr)
			return rc
		}
		c.Logger.Warn("redis unavailable, falling back to file cache", "addr", addr, "error", err)
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cannot create cache directory, caching disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/mazegen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configFile returns the default config path (~/.config/mazegen/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
