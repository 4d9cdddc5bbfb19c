// Package geometry defines the fixed dimensions of home tiles and blocks.
//
// # Overview
//
// A home tile is an isometric rhombus described by its overall width and its
// edge length. Its height is derived once from the Pythagorean relation and
// truncated to an even integer:
//
//	height = 2 * floor(sqrt(edge² - (width/2)²))
//
// A [Block] groups up to twelve tiles (three sub-columns of four) and carries
// the pitches the layout engine uses to interlock neighbouring blocks:
//
//	tile := geometry.DefaultTile()   // 350 x 176, half 175 x 88
//	block := geometry.NewBlock(tile) // 1400 x 704, pitch 1575 x 792
//
// Both types are plain values. They are safe to copy and to share between
// goroutines, and nothing in this package mutates them after construction.
//
// # Points and diamonds
//
// All coordinates are integer pixels with the origin in the top-left corner
// of the canvas and y growing downwards. [Tile.Diamond] turns a tile anchor
// into the four vertices that outline it on the canvas.
package geometry
