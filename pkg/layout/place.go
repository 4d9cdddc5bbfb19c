package layout

import "github.com/matzehuels/isotile/pkg/geometry"

// tilesPerColumn is the number of tiles stacked diagonally in one sub-column.
const tilesPerColumn = 4

// Sub-column origins relative to the block anchor, as multiples of the tile
// width (x) and tile height (y). Even rows step down-right and start their
// later sub-columns further left; odd rows mirror that.
var (
	evenColumnX = [3]float64{1.5, 0.75, 0}
	oddColumnX  = [3]float64{1.5, 2.25, 3}
	columnY     = [3]float64{-1.5, -0.75, 0}
)

// BlockAnchor returns the reference point of the block at (row, col).
//
// Rows are half a row pitch apart. When there is more than one row, even
// rows are shifted right by half a column pitch so that neighbouring rows
// interlock like bricks. Fractions are truncated after the offset is added.
func BlockAnchor(b geometry.Block, row, col, rowCount int) geometry.Point {
	x := float64(col * b.ColPitch)
	y := float64(b.Height)/2 + float64(row*b.HalfRowPitch)

	if row%2 == 0 && rowCount > 1 {
		x += float64(b.ColPitch) / 2
	}
	return geometry.Point{X: int(x), Y: int(y)}
}

// PlaceTiles returns the anchors of n tiles inside the block anchored at a.
//
// Tiles fill up to three sub-columns of four. Within a sub-column the i-th
// tile sits at origin + (sign*i*HalfWidth, i*HalfHeight), where sign is +1 on
// even rows and -1 on odd rows. Full sub-columns come first; a partial one
// holding n mod 4 tiles uses the next slot. n is clamped to [0, 12].
func PlaceTiles(t geometry.Tile, a geometry.Point, n int, even bool) []geometry.Point {
	n = max(0, min(n, geometry.BlockCapacity))

	columnX, sign := oddColumnX, -1
	if even {
		columnX, sign = evenColumnX, 1
	}

	result := make([]geometry.Point, 0, n)
	for slot := 0; len(result) < n; slot++ {
		origin := geometry.Point{
			X: int(float64(a.X) + float64(t.Width)*columnX[slot]),
			Y: int(float64(a.Y) + float64(t.Height)*columnY[slot]),
		}
		count := min(tilesPerColumn, n-len(result))
		for i := 0; i < count; i++ {
			result = append(result, geometry.Point{
				X: origin.X + sign*i*t.HalfWidth,
				Y: origin.Y + i*t.HalfHeight,
			})
		}
	}
	return result
}
