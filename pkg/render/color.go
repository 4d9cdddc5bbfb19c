package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/isotile/pkg/errors"
)

// DefaultFill is the tile colour: red at roughly half opacity.
var DefaultFill = color.NRGBA{R: 255, G: 0, B: 0, A: 127}

// ParseColor parses a hex colour in one of the forms #rgb, #rgba, #rrggbb or
// #rrggbbaa. The leading '#' is optional. Missing alpha means opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor returns c as #rrggbbaa.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
