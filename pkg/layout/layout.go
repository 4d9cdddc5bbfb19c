package layout

import (
	"slices"

	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/geometry"
)

// Block describes one placed block: its grid position, its anchor and the
// number of tiles it holds.
type Block struct {
	Row, Col int
	Anchor   geometry.Point
	Tiles    int
}

// Even reports whether the block sits on an even row.
func (b Block) Even() bool { return b.Row%2 == 0 }

// Layout is the immutable arrangement of a fixed number of tiles.
// Every field is computed by [New]; accessors hand out copies.
type Layout struct {
	geometry geometry.Block
	tiles    int
	rows     []int
	blocks   []Block
	coords   []geometry.Point
	size     geometry.Size
}

// Option configures [New].
type Option func(*options)

type options struct {
	geometry geometry.Block
}

// WithGeometry lays tiles out with the given block geometry instead of
// [geometry.DefaultBlock].
func WithGeometry(b geometry.Block) Option {
	return func(o *options) { o.geometry = b }
}

// New arranges count tiles into blocks and rows and computes every tile
// anchor and the canvas size.
//
// count must be a natural number; anything else is rejected with
// errors.ErrCodeInvalidArgument before any geometry is computed, and no
// layout is returned.
//
// Blocks are visited row by row, left to right. Every block holds 12 tiles
// except the last one visited, which holds the remainder (or 12 when count
// divides evenly). Coordinates are emitted in that visitation order, then in
// sub-column order within each block.
func New(count int, opts ...Option) (*Layout, error) {
	if err := errors.ValidateTileCount(count); err != nil {
		return nil, err
	}

	o := options{geometry: geometry.DefaultBlock()}
	for _, opt := range opts {
		opt(&o)
	}
	g := o.geometry
	if g.Capacity < 1 || g.Tile.Width < 1 || g.Tile.Height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "block geometry is not initialized; use geometry.NewBlock")
	}

	rows := DistributeRows(g.BlocksFor(count))
	l := &Layout{
		geometry: g,
		tiles:    count,
		rows:     rows,
		blocks:   make([]Block, 0, g.BlocksFor(count)),
		coords:   make([]geometry.Point, 0, count),
		size:     CanvasSize(g, rows),
	}

	remaining := count
	for row, cols := range rows {
		for col := 0; col < cols; col++ {
			n := min(remaining, g.Capacity)
			remaining -= n

			b := Block{
				Row:    row,
				Col:    col,
				Anchor: BlockAnchor(g, row, col, len(rows)),
				Tiles:  n,
			}
			l.blocks = append(l.blocks, b)
			l.coords = append(l.coords, PlaceTiles(g.Tile, b.Anchor, n, b.Even())...)
		}
	}
	return l, nil
}

// MustNew is like [New] but panics on invalid input.
// It is intended for tests and package-level examples.
func MustNew(count int, opts ...Option) *Layout {
	l, err := New(count, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// TileCount returns the number of tiles the layout was built for.
func (l *Layout) TileCount() int { return l.tiles }

// BlockCount returns the number of blocks, ceil(TileCount / 12).
func (l *Layout) BlockCount() int { return len(l.blocks) }

// RowCount returns the number of block rows.
func (l *Layout) RowCount() int { return len(l.rows) }

// Rows returns how many blocks occupy each row.
func (l *Layout) Rows() []int { return slices.Clone(l.rows) }

// Blocks returns every placed block in visitation order.
func (l *Layout) Blocks() []Block { return slices.Clone(l.blocks) }

// Coordinates returns the anchor of every tile in visitation order.
func (l *Layout) Coordinates() []geometry.Point { return slices.Clone(l.coords) }

// Size returns the canvas size in pixels.
func (l *Layout) Size() geometry.Size { return l.size }

// Geometry returns the block geometry the layout was computed with.
func (l *Layout) Geometry() geometry.Block { return l.geometry }

// Tile returns the tile geometry the layout was computed with.
func (l *Layout) Tile() geometry.Tile { return l.geometry.Tile }

// Diamonds returns the outline of every tile in visitation order.
func (l *Layout) Diamonds() [][4]geometry.Point {
	out := make([][4]geometry.Point, len(l.coords))
	for i, c := range l.coords {
		out[i] = l.geometry.Tile.Diamond(c)
	}
	return out
}
