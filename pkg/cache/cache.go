// Package cache provides artifact caching for generated textures.
//
// Generation is deterministic for a fixed seed, so a rendered artifact can
// be reused whenever the same family, options, seed and output format come
// around again. The Cache interface has four implementations:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: caching disabled
//   - (any Cache) wrapped by a ScopedKeyer for namespace isolation
//
// Keys are produced by a Keyer so every consumer hashes options the same
// way; see DefaultKeyer.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the artifact lifetime used when callers pass no explicit TTL.
const DefaultTTL = 7 * 24 * time.Hour

// Cache stores rendered artifacts keyed by strings.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts captures everything that influences a rendered artifact.
type ArtifactKeyOpts struct {
	Width      int
	Height     int
	Scale      float64
	Complexity float64
	Contrast   float64
	Sharpness  float64
	Colors     []string
	BlockSize  int
	Orientation float64
	Blockiness float64
	Seed       int64
	Format     string
}

// Keyer generates cache keys for texture artifacts.
type Keyer interface {
	ArtifactKey(family string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the family and options into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered texture artifact.
func (k *DefaultKeyer) ArtifactKey(family string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", family, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// per-user caches behind the HTTP API.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. The prefix is prepended to
// all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed key for a rendered texture artifact.
func (k *ScopedKeyer) ArtifactKey(family string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(family, opts)
}
