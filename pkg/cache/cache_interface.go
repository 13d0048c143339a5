package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer. Implementations may be
// Redis, Memcached or in-memory; repositories only depend on this interface.
//
// Existence checks never go through the cache: uniqueness and referential
// validation must always observe current storage state.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means cache miss and dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
