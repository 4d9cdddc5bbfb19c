// Package cli implements the isotile command-line interface.
//
// # Commands
//
//   - render: lay out N tiles and write the JSON record and image files
//   - layout: print the arrangement of N tiles without writing files
//   - serve: answer layout and image requests over HTTP
//   - cache: inspect and clear the artifact cache
//   - config: show the effective configuration
//
// # Configuration
//
// Defaults come from pkg/config, optionally overridden by a TOML file
// (--config, or the XDG default path), and finally by command-line flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isotile/pkg/buildinfo"
	"github.com/matzehuels/isotile/pkg/cache"
	"github.com/matzehuels/isotile/pkg/config"
	"github.com/matzehuels/isotile/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "isotile"

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

	// Config is loaded by the root command before any subcommand runs.
	Config     config.Config
	configPath string

	// confirm asks before the render command creates a missing directory.
	confirm confirmFunc
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Config:  config.Default(),
		confirm: teaConfirm(os.Stdin, os.Stderr),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "isotile arranges isometric tiles into a compact landscape grid",
		Long:         `isotile computes an isometric layout for a number of identical diamond tiles: it groups them into blocks of twelve, stacks the blocks in interlocking rows, and writes the tile coordinates as JSON together with a rendered image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			registerDebugHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/isotile/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// serveKeyPrefix separates artifacts rendered by the HTTP server from those
// written by the render command when both share a cache.
const serveKeyPrefix = "serve:"

// newRunner creates a pipeline runner backed by the configured cache.
// A nil keyer uses the default artifact keys.
func (c *CLI) newRunner(ctx context.Context, noCache bool, keyer cache.Keyer) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache picks the artifact cache: none when disabled, Redis when a URL is
// configured, otherwise files under the cache directory.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis cache", "url", cfg.RedisURL)
		return rc, nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
