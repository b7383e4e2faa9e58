package nodelink

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/conllview/pkg/cache"
	"github.com/matzehuels/conllview/pkg/observability"
)

// DefaultCacheTTL is how long a rendered SVG stays in the cache.
const DefaultCacheTTL = 30 * 24 * time.Hour

const svgKeyType = "svg"

// CacheKeyer is implemented by renderers whose output depends on their
// settings. The key must change whenever the SVG for the same DOT could.
type CacheKeyer interface {
	CacheKey() string
}

// rendererKey identifies r in cache keys. Renderers without a CacheKey
// method are identified by their type.
func rendererKey(r Renderer) string {
	if k, ok := r.(CacheKeyer); ok {
		return k.CacheKey()
	}
	return fmt.Sprintf("%T", r)
}

// CachedRenderer serves SVG from a cache keyed by the inner renderer and the
// DOT source, and falls back to the inner renderer on a miss. Cache failures
// are treated as misses.
type CachedRenderer struct {
	inner Renderer
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRenderer wraps inner. A nil cache disables caching.
func NewCachedRenderer(inner Renderer, c cache.Cache, ttl time.Duration) *CachedRenderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &CachedRenderer{inner: inner, cache: c, ttl: ttl}
}

// RenderSVG returns the cached SVG for dot or renders and stores it.
// Failed renders are never cached.
func (r *CachedRenderer) RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	key := cache.Key(svgKeyType, rendererKey(r.inner)+"\n"+dot)

	if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, svgKeyType)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, svgKeyType)

	svg, err := r.inner.RenderSVG(dot)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, svg, r.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, svgKeyType, len(svg))
	}
	return svg, nil
}
