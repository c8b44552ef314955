package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/server"
)

// Config is the on-disk configuration. Zero values mean "not set".
type Config struct {
	Height    int     `toml:"height,omitempty"`
	Width     int     `toml:"width,omitempty"`
	Seed      *uint64 `toml:"seed,omitempty"`
	Algorithm string  `toml:"algorithm,omitempty"`
	Mode      string  `toml:"mode,omitempty"`
	Output    string  `toml:"output,omitempty"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig is the [cache] table.
type CacheConfig struct {
	Disabled  bool     `toml:"disabled"`
	Dir       string   `toml:"dir,omitempty"`
	RedisAddr string   `toml:"redis_addr,omitempty"`
	TTL       duration `toml:"ttl"`
}

// ServerConfig is the [server] table.
type ServerConfig struct {
	Addr     string `toml:"addr,omitempty"`
	MaxCells int    `toml:"max_cells,omitempty"`
}

// duration reads and writes time.Duration as a string such as "720h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// defaultConfig is what "config init" writes.
func defaultConfig() Config {
	seed := pipeline.DefaultSeed
	return Config{
		Height:    pipeline.DefaultHeight,
		Width:     pipeline.DefaultWidth,
		Seed:      &seed,
		Algorithm: string(pipeline.DefaultAlgorithm),
		Mode:      string(pipeline.DefaultMode),
		Output:    pipeline.DefaultOutput,
		Cache:     CacheConfig{TTL: duration{cache.TTLMaze}},
		Server:    ServerConfig{Addr: server.DefaultAddr, MaxCells: server.DefaultMaxCells},
	}
}

// loadConfig reads path, or the default config file when path is empty. A
// missing default file yields an empty Config; a missing explicit file is an
// error. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// writeConfig encodes cfg to path, creating parent directories.
func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// resolvedConfigPath is --config or the default location.
func (c *CLI) resolvedConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return configFile()
}

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolvedConfigPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				printWarning("Config already exists")
				printDetail("File: %s", path)
				printNextStep("Overwrite with", appName+" config init --force")
				return nil
			}
			if err := writeConfig(path, defaultConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolvedConfigPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Fprintln(c.out, path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(c.out).Encode(c.config)
		},
	}
}
