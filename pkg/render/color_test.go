package render

import (
	"image/color"
	"testing"

	"github.com/matzehuels/isotile/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#ff00007f", DefaultFill},
		{"ff00007f", DefaultFill},
		{"#FF00007F", DefaultFill},
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#0f08", color.NRGBA{G: 255, A: 0x88}},
		{"  #102030  ", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"#00000000", color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12", "#12345", "#1234567", "#gg0000", "red", "#ff0000ff00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			if !errors.Is(err, errors.ErrCodeInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want %v", input, err, errors.ErrCodeInvalidColor)
			}
		})
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{DefaultFill, {}, {R: 1, G: 2, B: 3, A: 4}, {R: 255, G: 255, B: 255, A: 255}} {
		s := FormatColor(c)
		got, err := ParseColor(s)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", s, err)
		}
		if got != c {
			t.Errorf("ParseColor(FormatColor(%v)) = %v", c, got)
		}
	}
	if got := FormatColor(DefaultFill); got != "#ff00007f" {
		t.Errorf("FormatColor(DefaultFill) = %q, want #ff00007f", got)
	}
}
