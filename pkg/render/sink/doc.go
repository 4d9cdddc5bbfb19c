// Package sink provides output format renderers for tile layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format.
// This package provides renderers for:
//
//   - PNG: raster image, drawn with the gogpu/gg software renderer
//   - SVG: the same diamonds as vector polygons
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the layout record of [io.Record]
//
// Every renderer is a pure function of the layout and its options: rendering
// the same layout twice yields identical bytes, so artifacts can be cached by
// content.
//
// # PNG Output
//
// [RenderPNG] draws on a canvas of exactly [layout.Layout.Size] pixels. The
// background is transparent; each tile is its diamond filled with the fill
// colour and no outline.
//
//	png, err := sink.RenderPNG(l, sink.WithFill(color.NRGBA{R: 255, A: 127}))
//
// Use [WritePNG] to stream straight to a file or HTTP response.
//
// # SVG Output
//
// [RenderSVG] emits one polygon per tile with the same vertices the PNG uses.
// [WithSVGOutline] additionally outlines every block, which helps when
// checking the brick offset of even rows.
//
// # PDF Output
//
// [RenderPDF] converts the SVG via [render.ToPDF]. It requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout]: github.com/matzehuels/isotile/pkg/layout.Layout
// [layout.Layout.Size]: github.com/matzehuels/isotile/pkg/layout.Layout.Size
// [io.Record]: github.com/matzehuels/isotile/pkg/io.Record
// [render.ToPDF]: github.com/matzehuels/isotile/pkg/render.ToPDF
package sink
