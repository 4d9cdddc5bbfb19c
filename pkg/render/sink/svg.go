package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/isotile/pkg/layout"
	"github.com/matzehuels/isotile/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fill    color.NRGBA
	outline bool
}

// WithSVGFill sets the tile colour (default [render.DefaultFill]).
func WithSVGFill(c color.NRGBA) SVGOption { return func(r *svgRenderer) { r.fill = c } }

// WithSVGOutline draws the outline of every block.
func WithSVGOutline() SVGOption { return func(r *svgRenderer) { r.outline = true } }

// RenderSVG renders the layout as an SVG document.
func RenderSVG(l *layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{fill: render.DefaultFill}
	for _, opt := range opts {
		opt(&r)
	}

	size := l.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		size.Width, size.Height, size.Width, size.Height)

	fmt.Fprintf(&buf, `  <g fill="#%02x%02x%02x" fill-opacity="%.3f" stroke="none">`+"\n",
		r.fill.R, r.fill.G, r.fill.B, float64(r.fill.A)/255)
	for _, d := range l.Diamonds() {
		fmt.Fprintf(&buf, `    <polygon points="%d,%d %d,%d %d,%d %d,%d"/>`+"\n",
			d[0].X, d[0].Y, d[1].X, d[1].Y, d[2].X, d[2].Y, d[3].X, d[3].Y)
	}
	buf.WriteString("  </g>\n")

	if r.outline {
		renderBlockOutlines(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBlockOutlines(buf *bytes.Buffer, l *layout.Layout) {
	g := l.Geometry()
	buf.WriteString(`  <g fill="none" stroke="#333333" stroke-width="2" stroke-dasharray="12 8">` + "\n")
	for _, b := range l.Blocks() {
		fmt.Fprintf(buf, `    <rect id="block-%d-%d" x="%d" y="%d" width="%d" height="%d"/>`+"\n",
			b.Row, b.Col, b.Anchor.X, b.Anchor.Y-g.Height/2, g.Width, g.Height)
	}
	buf.WriteString("  </g>\n")
}
