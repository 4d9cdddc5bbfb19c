// Package render provides colour handling and format conversion shared by
// the isotile output sinks.
//
// # Overview
//
// The actual drawing lives in the [sink] subpackage, which turns a computed
// layout into PNG, SVG, PDF or JSON bytes. This package holds what those
// sinks have in common:
//
//   - Fill colours ([ParseColor], [FormatColor], [DefaultFill])
//   - SVG to PDF conversion ([ToPDF])
//
// # Colours
//
// Colours are written as CSS-style hex strings. The alpha channel is
// optional and defaults to opaque:
//
//	c, err := render.ParseColor("#ff00007f") // half-transparent red
//	c, err := render.ParseColor("#f00")      // opaque red
//
// [DefaultFill] is the half-transparent red every tile is painted with
// unless configured otherwise.
//
// # Format Conversion
//
// [ToPDF] converts an SVG document using the external rsvg-convert tool
// (from librsvg):
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [sink]: github.com/matzehuels/isotile/pkg/render/sink
package render
