// Package cache stores computed package orders between runs.
//
// An ordering depends only on the manifests' names and dependency keys and
// on the starting arrangement, so the CLI keys each result by a hash of
// exactly those inputs. Re-running in an unchanged repository skips ranking
// and insertion entirely; touching any manifest produces a new key.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// OrderKey derives the cache key for one ordering run. arrangement
// identifies the starting order; fingerprints describe each package and
// are hashed in the given order. Fingerprints are JSON-encoded, so they
// should be structured values rather than pre-joined strings.
func OrderKey(arrangement string, fingerprints any) string {
	return hashKey("order", arrangement, fingerprints)
}
