package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matzehuels/isotile/pkg/layout"
)

func TestRenderJSON(t *testing.T) {
	l := layout.MustNew(13)

	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		Width       int      `json:"width"`
		Height      int      `json:"height"`
		Coordinates [][2]int `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 2187 || out.Height != 1100 {
		t.Errorf("size = %dx%d, want 2187x1100", out.Width, out.Height)
	}
	if len(out.Coordinates) != 13 {
		t.Fatalf("len(coordinates) = %d, want 13", len(out.Coordinates))
	}
	if out.Coordinates[0] != [2]int{1312, 88} {
		t.Errorf("coordinates[0] = %v, want [1312 88]", out.Coordinates[0])
	}
}

func TestRenderJSONIdempotent(t *testing.T) {
	l := layout.MustNew(99)
	a, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("RenderJSON() is not deterministic")
	}
}
