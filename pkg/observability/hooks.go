// Package observability lets an embedding application watch texture
// generation, cache traffic, and API requests without coupling the core
// packages to any metrics or tracing backend.
//
// The application registers hook implementations once at startup:
//
//	observability.SetGenerationHooks(&promGenerationHooks{})
//	observability.SetCacheHooks(&promCacheHooks{})
//
// and the pipeline, cache, and server emit through the accessors:
//
//	observability.Generation().OnGenerateStart(ctx, family, seed)
//
// Unset categories fall back to no-op implementations, so emitting is
// always safe.
package observability

import (
	"context"
	"sync"
	"time"
)

// GenerationHooks observes the generate and render stages of the pipeline.
type GenerationHooks interface {
	OnGenerateStart(ctx context.Context, family string, seed int64)
	OnGenerateComplete(ctx context.Context, family string, seed int64, seamless bool, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks observes artifact cache traffic. keyType distinguishes the
// cached object kind (currently always "artifact").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks observes requests to the HTTP API.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopGenerationHooks discards all generation events. Embed it to
// implement only a subset of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerateStart(context.Context, string, int64) {}
func (NoopGenerationHooks) OnGenerateComplete(context.Context, string, int64, bool, time.Duration, error) {
}
func (NoopGenerationHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopGenerationHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks discards all HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry holds the active hooks for every category behind one lock.
type registry struct {
	mu         sync.RWMutex
	generation GenerationHooks
	cache      CacheHooks
	http       HTTPHooks
}

var active = registry{
	generation: NoopGenerationHooks{},
	cache:      NoopCacheHooks{},
	http:       NoopHTTPHooks{},
}

// SetGenerationHooks installs h as the generation observer. A nil h is
// ignored. Call before the first generation; swapping mid-flight is safe
// but events may land on either implementation.
func SetGenerationHooks(h GenerationHooks) {
	if h == nil {
		return
	}
	active.mu.Lock()
	active.generation = h
	active.mu.Unlock()
}

// SetCacheHooks installs h as the cache observer. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	active.mu.Lock()
	active.cache = h
	active.mu.Unlock()
}

// SetHTTPHooks installs h as the HTTP observer. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	active.mu.Lock()
	active.http = h
	active.mu.Unlock()
}

// Generation returns the active generation hooks.
func Generation() GenerationHooks {
	active.mu.RLock()
	defer active.mu.RUnlock()
	return active.generation
}

// Cache returns the active cache hooks.
func Cache() CacheHooks {
	active.mu.RLock()
	defer active.mu.RUnlock()
	return active.cache
}

// HTTP returns the active HTTP hooks.
func HTTP() HTTPHooks {
	active.mu.RLock()
	defer active.mu.RUnlock()
	return active.http
}

// Reset restores the no-op defaults for every category. Tests use this to
// isolate hook registrations.
func Reset() {
	active.mu.Lock()
	active.generation = NoopGenerationHooks{}
	active.cache = NoopCacheHooks{}
	active.http = NoopHTTPHooks{}
	active.mu.Unlock()
}
