// Package config loads isotile settings from a TOML file.
//
// The file is optional. Settings are looked up at [DefaultPath]
// ($XDG_CONFIG_HOME/isotile/config.toml or ~/.config/isotile/config.toml)
// unless a path is given explicitly. Command-line flags override file values.
//
//	[output]
//	dir = "out"
//	image = "image"
//	json = "json_data"
//	formats = ["json", "png"]
//
//	[render]
//	fill = "#ff00007f"
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/geometry"
	"github.com/matzehuels/isotile/pkg/pipeline"
	"github.com/matzehuels/isotile/pkg/render"
)

// Config is the full set of file settings.
type Config struct {
	Output OutputConfig `toml:"output"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// OutputConfig controls where `isotile render` writes.
type OutputConfig struct {
	Dir     string   `toml:"dir"`
	Image   string   `toml:"image"`
	JSON    string   `toml:"json"`
	Formats []string `toml:"formats"`
}

// RenderConfig controls how tiles are drawn.
type RenderConfig struct {
	Fill      string `toml:"fill"`
	Outline   bool   `toml:"outline"`
	TileWidth int    `toml:"tile_width"`
	TileEdge  int    `toml:"tile_edge"`
}

// CacheConfig selects the artifact cache backend. RedisURL takes precedence
// over Dir when both are set.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// ServerConfig configures `isotile serve`.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	MaxTiles int    `toml:"max_tiles"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Dir:     "out",
			Image:   "image",
			JSON:    "json_data",
			Formats: []string{pipeline.FormatJSON, pipeline.FormatPNG},
		},
		Render: RenderConfig{
			Fill:      render.FormatColor(render.DefaultFill),
			TileWidth: geometry.DefaultTileWidth,
			TileEdge:  geometry.DefaultTileEdge,
		},
		Server: ServerConfig{
			Addr:     ":8080",
			MaxTiles: 1000,
		},
	}
}

// DefaultPath returns the config file location following the XDG convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "isotile", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "isotile", "config.toml"), nil
}

// Load reads the file at path on top of [Default] and validates the result.
//
// An empty path means [DefaultPath], and a missing default file is not an
// error. A missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	if err := cfg.decode(string(data)); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text on top of [Default] and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(text); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(text string) error {
	md, err := toml.Decode(text, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if err := errors.ValidateOutputDir(c.Output.Dir); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.dir")
	}
	if err := errors.ValidateOutputName(c.Output.Image); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.image")
	}
	if err := errors.ValidateOutputName(c.Output.JSON); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.json")
	}
	if len(c.Output.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "output.formats must name at least one format")
	}
	if err := pipeline.ValidateFormats(c.Output.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.formats")
	}
	if _, err := render.ParseColor(c.Render.Fill); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.fill")
	}
	if _, err := geometry.NewTile(c.Render.TileWidth, c.Render.TileEdge); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.tile_width/tile_edge")
	}
	if c.Server.MaxTiles < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_tiles must be positive, got %d", c.Server.MaxTiles)
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
