package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/isotile/pkg/cache"
)

func TestServeRunnerScopesArtifactKeys(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := testContext(c)
	opts := cache.ArtifactKeyOpts{Format: "png", Fill: "#ff00007f"}

	serve, err := c.newServeRunner(ctx, false)
	if err != nil {
		t.Fatalf("newServeRunner() error: %v", err)
	}
	defer serve.Close()
	render, err := c.newRunner(ctx, false, nil)
	if err != nil {
		t.Fatalf("newRunner() error: %v", err)
	}
	defer render.Close()

	serveKey := serve.Keyer.ArtifactKey("hash", opts)
	renderKey := render.Keyer.ArtifactKey("hash", opts)
	if !strings.HasPrefix(serveKey, serveKeyPrefix) {
		t.Errorf("serve key = %q, want %q prefix", serveKey, serveKeyPrefix)
	}
	if strings.HasPrefix(renderKey, serveKeyPrefix) {
		t.Errorf("render key = %q, should not carry the serve prefix", renderKey)
	}
	if serveKey != serveKeyPrefix+renderKey {
		t.Errorf("serve key = %q, want %q", serveKey, serveKeyPrefix+renderKey)
	}
}

func TestRunServeRejectsMaxTiles(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := c.runServe(testContext(c), ":0", 0, true); err == nil {
		t.Error("runServe() with max-tiles 0 should fail")
	}
}
