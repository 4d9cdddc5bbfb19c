package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/isotile/pkg/cache"
	"github.com/matzehuels/isotile/pkg/geometry"
	isoio "github.com/matzehuels/isotile/pkg/io"
	"github.com/matzehuels/isotile/pkg/layout"
)

// ComputeLayout arranges opts.Count tiles with the configured geometry.
func ComputeLayout(opts Options) (*layout.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return layout.New(opts.Count, layout.WithGeometry(opts.Geometry()))
}

// LayoutHash returns the content hash of a layout: its record plus the tile
// geometry the diamonds are drawn with.
func LayoutHash(l *layout.Layout) string {
	data, _ := json.Marshal(struct {
		Tile   geometry.Tile `json:"tile"`
		Record isoio.Record  `json:"record"`
	}{l.Tile(), isoio.NewRecord(l)})
	return cache.Hash(data)
}
