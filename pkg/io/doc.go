// Package io provides JSON import and export for computed tile layouts.
//
// # Overview
//
// A [Record] is the portable description of a layout: the canvas size and
// the anchor of every tile. It is what the isotile CLI writes next to the
// rendered image and what the HTTP server answers with. The format is
// intentionally small so other tools can place their own artwork on the
// computed positions.
//
// # JSON Format
//
// A record is a single object with three fields:
//
//	{"width":2975,"height":1496,"coordinates":[[787,88],[962,176],...]}
//
// Fields:
//   - width, height: canvas size in pixels
//   - coordinates: one [x, y] pair per tile, in layout order
//
// Coordinates are the left vertex of each tile's diamond. The encoding is
// compact (no indentation); the coordinate list can be long.
//
// # Export
//
// Use [ExportJSON] to write a layout to a file, or [WriteJSON] to write to any
// io.Writer:
//
//	l, _ := layout.New(37)
//	if err := io.ExportJSON(l, "out/json_data.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Import
//
// Use [ImportJSON] to read a record from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate the record before returning it:
//
//	rec, err := io.ImportJSON("out/json_data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rec.Size(), len(rec.Points()))
//
// A record read back from an export reconstructs the same size and
// coordinate sequence as the layout it was written from.
package io
