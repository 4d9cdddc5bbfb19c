package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/isotile/pkg/cache"
	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/geometry"
	"github.com/matzehuels/isotile/pkg/layout"
	"github.com/matzehuels/isotile/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"png", false},
		{"svg", false},
		{"pdf", false},
		{"invalid", true},
		{"PNG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"json", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"json", "png"}},
		{" , ", []string{"json", "png"}},
		{"svg", []string{"svg"}},
		{"png,svg", []string{"png", "svg"}},
		{" PNG , json ,png", []string{"png", "json"}},
	}

	for _, tt := range tests {
		if got := ParseFormats(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Count: 5}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if !slices.Equal(opts.Formats, DefaultFormats) {
		t.Errorf("Formats = %v, want %v", opts.Formats, DefaultFormats)
	}
	if opts.Fill != "#ff00007f" {
		t.Errorf("Fill = %q, want #ff00007f", opts.Fill)
	}
	if opts.Geometry() != geometry.DefaultBlock() {
		t.Errorf("Geometry() = %+v, want default block", opts.Geometry())
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error: %v", err)
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"zero count", Options{Count: 0}, errors.ErrCodeInvalidArgument},
		{"negative count", Options{Count: -4}, errors.ErrCodeInvalidArgument},
		{"bad format", Options{Count: 1, Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad fill", Options{Count: 1, Fill: "#zzzzzz"}, errors.ErrCodeInvalidColor},
		{"flat tile", Options{Count: 1, TileWidth: 100, TileEdge: 50}, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Count: 1, Fill: "#00ff00ff", Outline: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	if k := opts.ArtifactKeyOpts(FormatJSON); k.Fill != "" || k.Outline {
		t.Errorf("json key opts = %+v, want format only", k)
	}
	if k := opts.ArtifactKeyOpts(FormatPNG); k.Fill != "#00ff00ff" || k.Outline {
		t.Errorf("png key opts = %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatSVG); !k.Outline {
		t.Errorf("svg key opts = %+v, want outline", k)
	}
}

func TestComputeLayout(t *testing.T) {
	l, err := ComputeLayout(Options{Count: 37})
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}
	if got := l.Rows(); !slices.Equal(got, []int{1, 2, 1}) {
		t.Errorf("Rows() = %v, want [1 2 1]", got)
	}

	small, err := ComputeLayout(Options{Count: 37, TileWidth: 100, TileEdge: 60})
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}
	if small.Size().Width >= l.Size().Width {
		t.Errorf("smaller tiles gave canvas %v, not smaller than %v", small.Size(), l.Size())
	}
}

func TestLayoutHash(t *testing.T) {
	a := LayoutHash(layout.MustNew(20))
	if a != LayoutHash(layout.MustNew(20)) {
		t.Error("LayoutHash should be deterministic")
	}
	if a == LayoutHash(layout.MustNew(21)) {
		t.Error("different layouts should hash differently")
	}
}

func TestRender(t *testing.T) {
	l := layout.MustNew(13)
	artifacts, err := Render(context.Background(), l, Options{Count: 13, Formats: []string{"json", "png", "svg"}})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if len(artifacts) != 3 {
		t.Fatalf("Render() returned %d artifacts, want 3", len(artifacts))
	}
	var rec struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal(artifacts["json"], &rec); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if rec.Width != 2187 || rec.Height != 1100 {
		t.Errorf("json artifact size = %dx%d, want 2187x1100", rec.Width, rec.Height)
	}
	if !bytes.HasPrefix(artifacts["png"], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
	if !bytes.HasPrefix(artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact is not an SVG")
	}
}

func TestRunnerExecute(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	ctx := context.Background()
	first, err := runner.Execute(ctx, Options{Count: 37})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if first.RunID == "" {
		t.Error("RunID should be set")
	}
	if first.Stats.Tiles != 37 || first.Stats.Blocks != 4 || first.Stats.Rows != 3 {
		t.Errorf("Stats = %+v, want 37 tiles, 4 blocks, 3 rows", first.Stats)
	}
	for _, f := range DefaultFormats {
		if len(first.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}

	second, err := runner.Execute(ctx, Options{Count: 37})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if second.RunID == first.RunID {
		t.Error("each run should get its own RunID")
	}
	for _, f := range DefaultFormats {
		if !bytes.Equal(first.Artifacts[f], second.Artifacts[f]) {
			t.Errorf("cached %s artifact differs from rendered one", f)
		}
	}

	refreshed, err := runner.Execute(ctx, Options{Count: 37, Refresh: true})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}

	// A different fill must not reuse the cached PNG.
	red, err := runner.Execute(ctx, Options{Count: 37, Formats: []string{"png"}, Fill: "#ff0000ff"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if red.CacheInfo.RenderHit {
		t.Error("different fill should miss the cache")
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{Count: 0})
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Execute(0) error = %v, want %v", err, errors.ErrCodeInvalidArgument)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu      sync.Mutex
	layouts []int
	renders [][]string
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, tiles, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts = append(h.layouts, tiles)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders = append(h.renders, formats)
}

func TestRunnerCallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	runner := NewRunner(nil, nil, nil)
	if _, err := runner.Execute(context.Background(), Options{Count: 3, Formats: []string{"json"}}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if !slices.Equal(hooks.layouts, []int{3}) {
		t.Errorf("layout hooks = %v, want [3]", hooks.layouts)
	}
	if len(hooks.renders) != 1 || !slices.Equal(hooks.renders[0], []string{"json"}) {
		t.Errorf("render hooks = %v, want [[json]]", hooks.renders)
	}
}
