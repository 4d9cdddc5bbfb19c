// Package pipeline provides the layout → render pipeline shared by the
// isotile CLI and HTTP server.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: arrange the tiles ([layout.New])
//  2. Render: produce each requested output format ([Render])
//
// The layout stage is cheap and always runs. Rendered artifacts are cached
// under a key derived from the layout content and the render options, so a
// second run for the same tile count only reads the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Count:   37,
//	    Formats: []string{"json", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	l, err := runner.ComputeLayout(ctx, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isotile/pkg/cache"
	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/geometry"
	"github.com/matzehuels/isotile/pkg/layout"
	"github.com/matzehuels/isotile/pkg/render"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// DefaultFormats are written when no format is requested: the layout record
// and the raster image.
var DefaultFormats = []string{FormatJSON, FormatPNG}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Count     int `json:"count"`
	TileWidth int `json:"tile_width,omitempty"` // 0 = geometry.DefaultTileWidth
	TileEdge  int `json:"tile_edge,omitempty"`  // 0 = geometry.DefaultTileEdge

	// Render options
	Formats []string `json:"formats,omitempty"`
	Fill    string   `json:"fill,omitempty"` // #rrggbbaa
	Outline bool     `json:"outline,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	fill      color.NRGBA
	geometry  geometry.Block
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and HTTP responses.
	RunID string

	// Layout is the computed tile arrangement.
	Layout *layout.Layout

	// LayoutHash is the content hash used in artifact cache keys.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tiles      int
	Blocks     int
	Rows       int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, png, svg, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats parses a comma-separated format list. Entries are trimmed and
// lower-cased, empty entries and duplicates are dropped. An empty string
// yields [DefaultFormats].
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return slices.Clone(DefaultFormats)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateTileCount(o.Count); err != nil {
		return err
	}
	if err := o.setGeometry(); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Fill == "" {
		o.Fill = render.FormatColor(render.DefaultFill)
	}
	fill, err := render.ParseColor(o.Fill)
	if err != nil {
		return err
	}
	o.fill = fill

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) setGeometry() error {
	if o.TileWidth == 0 {
		o.TileWidth = geometry.DefaultTileWidth
	}
	if o.TileEdge == 0 {
		o.TileEdge = geometry.DefaultTileEdge
	}
	t, err := geometry.NewTile(o.TileWidth, o.TileEdge)
	if err != nil {
		return err
	}
	o.geometry = geometry.NewBlock(t)
	return nil
}

// Geometry returns the block geometry. Only valid after ValidateAndSetDefaults.
func (o *Options) Geometry() geometry.Block { return o.geometry }

// FillColor returns the parsed fill. Only valid after ValidateAndSetDefaults.
func (o *Options) FillColor() color.NRGBA { return o.fill }

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Fill = o.Fill
	case FormatSVG, FormatPDF:
		k.Fill = o.Fill
		k.Outline = o.Outline
	}
	return k
}

// String summarises the options for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("count=%d formats=%s fill=%s", o.Count, strings.Join(o.Formats, ","), o.Fill)
}
