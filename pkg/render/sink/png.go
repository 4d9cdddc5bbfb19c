package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/matzehuels/isotile/pkg/layout"
	"github.com/matzehuels/isotile/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	fill color.NRGBA
}

// WithFill sets the tile colour (default [render.DefaultFill]).
func WithFill(c color.NRGBA) PNGOption {
	return func(r *pngRenderer) { r.fill = c }
}

// RenderPNG renders the layout as a PNG image.
func RenderPNG(l *layout.Layout, opts ...PNGOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(l, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG renders the layout and encodes the PNG to w.
func WritePNG(l *layout.Layout, w io.Writer, opts ...PNGOption) error {
	r := pngRenderer{fill: render.DefaultFill}
	for _, opt := range opts {
		opt(&r)
	}

	size := l.Size()
	dc := gg.NewContext(size.Width, size.Height)
	defer dc.Close()

	dc.Clear()
	dc.SetRGBA(
		float64(r.fill.R)/255,
		float64(r.fill.G)/255,
		float64(r.fill.B)/255,
		float64(r.fill.A)/255,
	)

	// Diamonds share edges but never overlap, so one path fills them all.
	for _, d := range l.Diamonds() {
		dc.MoveTo(float64(d[0].X), float64(d[0].Y))
		for _, v := range d[1:] {
			dc.LineTo(float64(v.X), float64(v.Y))
		}
		dc.ClosePath()
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill tiles: %w", err)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
