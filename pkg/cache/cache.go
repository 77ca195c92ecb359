// Package cache provides response caching for the syntaxdiagrams render
// pipeline: a rendered SVG or text grid is expensive enough to recompute
// (five-pass layout plus emission) that the serve command caches it by
// content hash of (diagram tree, settings, backend).
//
// Two backends are provided: [FileCache] for local/offline use and
// [RedisCache] for multi-instance deployments, both behind the same
// [Cache] interface so callers don't care which is active. [NullCache]
// disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores and retrieves byte-slice values by key with an optional
// time-to-live. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. ok is false on a cache miss; it is not an
	// error for a key to be absent.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying connection or file handle.
	Close() error
}

// Keyer derives cache keys for rendered diagrams. Render output depends
// only on the tree, the backend, and the settings, so a single method
// covers every caller.
type Keyer interface {
	// DiagramKey returns the cache key for a render of a tree (identified
	// by treeHash, typically [Hash] of its canonical encoding) through
	// backend ("vector" or "text") with the given settingsHash.
	DiagramKey(treeHash, backend, settingsHash string) string
}

// DefaultKeyer is the unscoped [Keyer] implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [Keyer] with no namespace prefix.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DiagramKey implements [Keyer].
func (DefaultKeyer) DiagramKey(treeHash, backend, settingsHash string) string {
	return hashKey("diagram", treeHash, backend, settingsHash)
}
