// Package cache stores rendered artifacts between runs.
//
// Rendering a sentence through Graphviz is the slowest step of the viewer, and
// the DOT text of a sentence fully determines its SVG. Renderers therefore key
// their output by a hash of the DOT source and consult a [Cache] first.
//
// Two implementations are provided:
//
//   - [FileCache] stores entries as JSON files under a directory
//     (by default $XDG_CACHE_HOME/conllview)
//   - [NullCache] never stores anything and is used with --no-cache
//
// Keys are built with [Key] so every entry type lives in its own namespace:
//
//	key := cache.Key("svg", dot)
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. hit is false when the key is absent
	// or expired.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
