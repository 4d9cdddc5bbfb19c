package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/pipeline"
)

// ErrAborted is returned when the user declines to continue. The message has
// already been printed, so main exits non-zero without printing it again.
var ErrAborted = stderrors.New("aborted")

// refusalMessage is printed when the output directory may not be created.
const refusalMessage = "This program cannot be executed."

// renderOpts holds the command-line flags for the render command.
// Empty values fall back to the loaded configuration.
type renderOpts struct {
	dir     string // output directory
	image   string // image base name, without extension
	json    string // JSON base name, without extension
	formats string // comma-separated output formats
	fill    string // tile colour, #rrggbbaa
	outline bool   // draw block outlines (svg, pdf)
	yes     bool   // create a missing output directory without asking
	noCache bool   // bypass the artifact cache
	refresh bool   // re-render and overwrite cached artifacts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render COUNT",
		Short: "Lay out COUNT tiles and write the JSON record and image",
		Long: `Lay out COUNT tiles and write the results.

The layout record (canvas size and the top-left anchor of every tile) is written
to <dir>/<json>.json and each image format to <dir>/<image>.<ext>.

If the output directory does not exist you are asked whether to create it;
--yes skips the question. Declining stops the program with a non-zero exit.`,
		Example: `  isotile render 37
  isotile render 1000 -d build -i landscape -f json,png,svg
  isotile render 12 --fill "#3366ffcc" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.outline = ro.outline || (!cmd.Flags().Changed("outline") && c.Config.Render.Outline)
			return c.runRender(cmd.Context(), args[0], ro)
		},
	}

	cmd.Flags().StringVarP(&ro.dir, "dir", "d", "", "output directory (default from config: out)")
	cmd.Flags().StringVarP(&ro.image, "image", "i", "", "image file name without extension (default from config: image)")
	cmd.Flags().StringVarP(&ro.json, "json", "j", "", "JSON file name without extension (default from config: json_data)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): json, png, svg, pdf (comma-separated)")
	cmd.Flags().StringVar(&ro.fill, "fill", "", "tile fill colour as #rrggbbaa")
	cmd.Flags().BoolVar(&ro.outline, "outline", false, "outline blocks (svg, pdf)")
	cmd.Flags().BoolVarP(&ro.yes, "yes", "y", false, "create the output directory without asking")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&ro.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// resolve fills empty flags from the configuration and validates the names.
func (c *CLI) resolve(ro renderOpts) (renderOpts, []string, error) {
	out := c.Config.Output
	if ro.dir == "" {
		ro.dir = out.Dir
	}
	if ro.image == "" {
		ro.image = out.Image
	}
	if ro.json == "" {
		ro.json = out.JSON
	}
	if ro.fill == "" {
		ro.fill = c.Config.Render.Fill
	}

	formats := out.Formats
	if ro.formats != "" {
		formats = pipeline.ParseFormats(ro.formats)
	}
	if len(formats) == 0 {
		formats = slices.Clone(pipeline.DefaultFormats)
	}
	if err := pipeline.ValidateFormats(formats); err != nil {
		return ro, nil, err
	}

	if err := errors.ValidateOutputDir(ro.dir); err != nil {
		return ro, nil, err
	}
	if err := errors.ValidateOutputName(ro.image); err != nil {
		return ro, nil, err
	}
	if err := errors.ValidateOutputName(ro.json); err != nil {
		return ro, nil, err
	}
	return ro, writeOrder(formats), nil
}

// runRender computes the layout, renders every format and writes the files.
func (c *CLI) runRender(ctx context.Context, countArg string, ro renderOpts) error {
	logger := loggerFromContext(ctx)
	start := newProgress(logger)

	count, err := errors.ParseTileCount(countArg)
	if err != nil {
		return err
	}

	ro, formats, err := c.resolve(ro)
	if err != nil {
		return err
	}

	if err := c.ensureDir(ctx, ro.dir, ro.yes); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, ro.noCache, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Count:     count,
		TileWidth: c.Config.Render.TileWidth,
		TileEdge:  c.Config.Render.TileEdge,
		Formats:   formats,
		Fill:      ro.fill,
		Outline:   ro.outline,
		Refresh:   ro.refresh,
		Logger:    logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d tiles...", count))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(ro, format)
		p := newProgress(logger)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		p.done("Wrote " + path)
		paths = append(paths, path)
	}

	printSuccess("Rendered %d tiles", count)
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.Tiles, result.Stats.Blocks, result.Stats.Rows, result.CacheInfo.RenderHit)
	start.done("Finished")
	return nil
}

// ensureDir makes sure dir exists, asking before it is created.
func (c *CLI) ensureDir(ctx context.Context, dir string, yes bool) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New(errors.ErrCodeInvalidPath, "%s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", dir, err)
	}

	if !yes {
		ok, err := c.confirm(ctx, fmt.Sprintf("Directory %q does not exist. Create it?", dir))
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if !ok {
			printError(refusalMessage)
			return ErrAborted
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	loggerFromContext(ctx).Debug("created output directory", "dir", dir)
	return nil
}

// outputPath returns where format is written: the JSON record uses the JSON
// base name, every image format the image base name.
func outputPath(ro renderOpts, format string) string {
	name := ro.image
	if format == pipeline.FormatJSON {
		name = ro.json
	}
	return filepath.Join(ro.dir, name+pipeline.Extension(format))
}

// writeOrder puts the JSON record first and keeps the other formats in the
// order they were requested.
func writeOrder(formats []string) []string {
	ordered := make([]string, 0, len(formats))
	for _, f := range formats {
		if f == pipeline.FormatJSON {
			ordered = append(ordered, f)
		}
	}
	for _, f := range formats {
		if f != pipeline.FormatJSON {
			ordered = append(ordered, f)
		}
	}
	return ordered
}
