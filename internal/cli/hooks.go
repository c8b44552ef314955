package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/observability"
)

// logHooks reports cache traffic at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.CacheHooks = logHooks{}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
