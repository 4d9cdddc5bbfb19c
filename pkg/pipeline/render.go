package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/layout"
	"github.com/matzehuels/isotile/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
// Formats are rendered concurrently; the layout is read-only.
func Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(ctx, l, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, l *layout.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithFill(opts.FillColor()))
	case FormatSVG:
		return sink.RenderSVG(l, svgOptions(opts)...), nil
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(svgOptions(opts)...))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithSVGFill(opts.FillColor())}
	if opts.Outline {
		svgOpts = append(svgOpts, sink.WithSVGOutline())
	}
	return svgOpts
}
