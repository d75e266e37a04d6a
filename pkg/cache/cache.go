// Package cache stores rendered figures so repeated renders of the same
// spec are served without drawing again.
//
// # Backends
//
//   - [FileCache]: hash-sharded JSON files under a directory (CLI default)
//   - [RedisCache]: a Redis server, using native key expiry
//   - [MongoCache]: a MongoDB collection with a TTL index on expires_at
//   - [NullCache]: stores nothing
//
// [Open] picks a backend from a URL:
//
//	c, err := cache.Open(ctx, "redis://localhost:6379/0", "")
//	c, err := cache.Open(ctx, "", "/home/me/.cache/plotkit") // file cache
//
// # Keys
//
// Keys are built with [ArtifactKey] from the hash of a normalised spec and
// the output format. [Prefixed] namespaces every key of a cache, which is
// how builds of different versions avoid serving each other's artifacts.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the cache.
	Close() error
}

// Prefixed returns a cache that prepends prefix to every key of c.
func Prefixed(c Cache, prefix string) Cache {
	if prefix == "" {
		return c
	}
	return &prefixed{inner: c, prefix: prefix}
}

type prefixed struct {
	inner  Cache
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return p.inner.Set(ctx, p.prefix+key, data, ttl)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}

func (p *prefixed) Close() error {
	return p.inner.Close()
}
