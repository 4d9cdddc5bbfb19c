package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/isotile/pkg/geometry"
)

// CanvasSize returns the smallest canvas that holds every block of the rows.
//
// The height grows by half a row pitch per extra row. The width is set by the
// widest row; when the first row is among the widest and there are several
// rows, its brick offset pushes it right by another half column pitch.
func CanvasSize(b geometry.Block, rows []int) geometry.Size {
	if len(rows) == 0 {
		return geometry.Size{}
	}

	height := float64(b.Height + (len(rows)-1)*b.HalfRowPitch)

	widest := slices.Max(rows)
	width := float64(b.Width + (widest-1)*b.ColPitch)
	if rows[0] == widest && len(rows) > 1 {
		width += float64(b.HalfColPitch)
	}

	return geometry.Size{
		Width:  int(math.Ceil(width)),
		Height: int(math.Ceil(height)),
	}
}
