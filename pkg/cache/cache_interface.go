package cache

import (
	"context"
	"time"
)

// Cache is the contract for the shared cache layer. The chat domain keeps
// its session history here so conversational state is bounded by a TTL
// instead of living in an unbounded in-process map.
type Cache interface {
	// Get reads a key and unmarshals it into dest. Returns found=false on a
	// cache miss, leaving dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
