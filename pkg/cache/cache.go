// Package cache stores rendered artifacts so repeated runs for the same tile
// count skip rendering.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: stores nothing (--no-cache, tests)
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the layout content
// together with every render option, so a cached artifact is only reused when
// it would be rendered byte-for-byte identically. [ScopedKeyer] adds a prefix
// for shared backends.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
// It returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// TTLArtifact is how long rendered artifacts are kept. Layouts are a pure
// function of their inputs, so the limit only bounds disk usage.
const TTLArtifact = 30 * 24 * time.Hour
