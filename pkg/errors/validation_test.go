package errors

import (
	"strings"
	"testing"
)

func TestValidateTileCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"twelve", 12, false},
		{"large", 100000, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"very negative", -1 << 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTileCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTileCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidateTileCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}

func TestParseTileCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"simple", "13", 13, false},
		{"surrounding spaces", " 7 ", 7, false},
		{"plus sign", "+4", 4, false},

		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"fraction", "1.5", 0, true},
		{"trailing garbage", "12abc", 0, true},
		{"word", "ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTileCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTileCount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidArgument) {
					t.Errorf("ParseTileCount(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidArgument)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseTileCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default image", "image", false},
		{"default json", "json_data", false},
		{"with dot", "map.v2", false},
		{"hidden", ".layout", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"slash", "out/image", true},
		{"backslash", "out\\image", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"control char", "img\x01", true},
		{"newline", "img\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out", false},
		{"nested", "build/maps", false},
		{"absolute", "/tmp/isotile", false},
		{"parent", "../out", false},

		{"empty", "", true},
		{"null byte", "out\x00", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
