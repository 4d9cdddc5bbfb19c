package sink

import (
	isoio "github.com/matzehuels/isotile/pkg/io"
	"github.com/matzehuels/isotile/pkg/layout"
)

// RenderJSON exports the layout record (canvas size and tile coordinates) as
// compact JSON. See [isoio.Record] for the format.
func RenderJSON(l *layout.Layout) ([]byte, error) {
	return isoio.MarshalJSON(l)
}
