package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/conllview/pkg/observability"
)

// logHooks reports library events at debug level and forwards them to the
// metrics collector.
type logHooks struct {
	logger  *log.Logger
	metrics *observability.Metrics
}

// registerHooks routes load, render and cache events to logger and metrics.
// metrics may be nil.
func registerHooks(logger *log.Logger, metrics *observability.Metrics) {
	h := &logHooks{logger: logger, metrics: metrics}
	observability.SetLoadHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnSentenceLoaded(index, tokens int) {
	if h.metrics != nil {
		h.metrics.OnSentenceLoaded(index, tokens)
	}
}

func (h *logHooks) OnSentenceSkipped(index int, err error) {
	if h.metrics != nil {
		h.metrics.OnSentenceSkipped(index, err)
	}
}

func (h *logHooks) OnLoadComplete(loaded, skipped int, duration time.Duration, err error) {
	if h.metrics != nil {
		h.metrics.OnLoadComplete(loaded, skipped, duration, err)
	}
	h.logger.Debug("load complete", "loaded", loaded, "skipped", skipped,
		"duration", duration.Round(time.Millisecond), "error", err)
}

func (h *logHooks) OnRenderStart(backend string) {
	h.logger.Debug("render start", "backend", backend)
}

func (h *logHooks) OnRenderComplete(backend string, size int, duration time.Duration, err error) {
	if h.metrics != nil {
		h.metrics.OnRenderComplete(backend, size, duration, err)
	}
	if err != nil {
		h.logger.Debug("render failed", "backend", backend, "error", err)
		return
	}
	h.logger.Debug("render complete", "backend", backend, "bytes", size,
		"duration", duration.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(ctx context.Context, keyType string) {
	if h.metrics != nil {
		h.metrics.OnCacheHit(ctx, keyType)
	}
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h *logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	if h.metrics != nil {
		h.metrics.OnCacheMiss(ctx, keyType)
	}
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h *logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	if h.metrics != nil {
		h.metrics.OnCacheSet(ctx, keyType, size)
	}
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}
