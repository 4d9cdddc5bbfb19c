// Package pkg provides the libraries behind isotile, an isometric tile
// arranger.
//
// # Overview
//
// isotile takes a number of identical diamond tiles, groups them into blocks
// of twelve, stacks the blocks in interlocking rows and reports where every
// tile goes. The pkg directory is organized into:
//
//  1. [geometry] - Tile and block dimensions, points and diamonds
//  2. [layout] - The arrangement engine (rows, anchors, tiles, canvas)
//  3. [io] - The JSON layout record
//  4. [render] and [render/sink] - PNG, SVG, PDF and JSON output
//  5. [pipeline] - Orchestration (layout → render) with caching
//  6. [cache], [config], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
//	tile count
//	     ↓
//	[layout] package (rows, block anchors, tile anchors, canvas size)
//	     ↓
//	[pipeline] package (artifact cache lookup, concurrent rendering)
//	     ↓
//	[render/sink] package (PNG via gogpu/gg, SVG, PDF, JSON)
//
// # Quick Start
//
//	l, err := layout.New(37)
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(l)
//	record, err := sink.RenderJSON(l)
package pkg
