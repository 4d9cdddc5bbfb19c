package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isotile/pkg/observability"
)

// debugHooks logs pipeline and cache events at debug level.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnLayoutStart(_ context.Context, tiles int) {
	h.logger.Debug("layout started", "tiles", tiles)
}

func (h debugHooks) OnLayoutComplete(_ context.Context, tiles, blocks int, d time.Duration, err error) {
	h.logger.Debug("layout finished", "tiles", tiles, "blocks", blocks, "duration", d, "err", err)
}

func (h debugHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("render finished", "formats", formats, "duration", d, "err", err)
}

func (h debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}

// registerDebugHooks routes hook events to the logger when it logs at debug level.
func registerDebugHooks(logger *log.Logger) {
	if logger.GetLevel() > log.DebugLevel {
		return
	}
	h := debugHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}
