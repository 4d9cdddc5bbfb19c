package geometry

import (
	"math"

	"github.com/matzehuels/isotile/pkg/errors"
)

const (
	// DefaultTileWidth is the overall width of a home tile in pixels.
	DefaultTileWidth = 350

	// DefaultTileEdge is the edge length of a home tile in pixels.
	DefaultTileEdge = 196
)

// Tile holds the dimensions of one home tile.
// Height, HalfWidth and HalfHeight are derived by [NewTile] and never
// recomputed; placement math only reads these four values.
type Tile struct {
	Width      int
	Edge       int
	Height     int
	HalfWidth  int
	HalfHeight int
}

// NewTile derives a tile from its overall width and edge length.
//
// The edge must be strictly longer than half the width, otherwise the rhombus
// degenerates to a flat line; such input is rejected with
// errors.ErrCodeInvalidArgument.
func NewTile(width, edge int) (Tile, error) {
	if width < 1 || edge < 1 {
		return Tile{}, errors.New(errors.ErrCodeInvalidArgument, "tile width and edge must be positive, got %d and %d", width, edge)
	}
	half := float64(width) / 2
	rise := math.Sqrt(float64(edge)*float64(edge) - half*half)
	if math.IsNaN(rise) || int(rise) < 1 {
		return Tile{}, errors.New(errors.ErrCodeInvalidArgument, "tile edge %d is too short for width %d", edge, width)
	}
	height := int(rise) * 2
	return Tile{
		Width:      width,
		Edge:       edge,
		Height:     height,
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
	}, nil
}

// DefaultTile returns the standard 350px home tile.
func DefaultTile() Tile {
	t, err := NewTile(DefaultTileWidth, DefaultTileEdge)
	if err != nil {
		panic(err) // constants are known to be valid
	}
	return t
}

// Diamond returns the four outline vertices of a tile anchored at a: the
// anchor (left vertex), then the top, right and bottom vertices, in the order
// the renderers trace the polygon.
func (t Tile) Diamond(a Point) [4]Point {
	return [4]Point{
		a,
		{X: a.X + t.HalfWidth, Y: a.Y - t.HalfHeight},
		{X: a.X + t.Width, Y: a.Y},
		{X: a.X + t.HalfWidth, Y: a.Y + t.HalfHeight},
	}
}

// Bounds returns the top-left and bottom-right corners of the smallest
// rectangle enclosing the tile anchored at a.
func (t Tile) Bounds(a Point) (min, max Point) {
	return Point{X: a.X, Y: a.Y - t.HalfHeight}, Point{X: a.X + t.Width, Y: a.Y + t.HalfHeight}
}
