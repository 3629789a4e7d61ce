// Package observability provides hooks for metrics and tracing.
//
// The library itself depends on no observability backend. Instead it
// exposes hook interfaces with no-op defaults; an application registers
// implementations at startup and the chart, cache, and server code
// emits events through the registry.
//
// Register hooks before any rendering starts:
//
//	observability.SetRenderHooks(&myRenderHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
//
// Libraries emit through the accessors:
//
//	observability.Render().OnRenderStart(ctx, "bar")
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, "bar", size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from chart layout and rendering.
type RenderHooks interface {
	// OnLayoutStart fires when axis scaling and page layout begin for
	// a chart of the given kind.
	OnLayoutStart(ctx context.Context, kind string, seriesCount int)

	// OnLayoutComplete fires when layout finishes or fails.
	OnLayoutComplete(ctx context.Context, kind string, duration time.Duration, err error)

	// OnRenderStart fires when drawing statements begin emitting.
	OnRenderStart(ctx context.Context, kind string)

	// OnRenderComplete fires with the serialized artifact size.
	OnRenderComplete(ctx context.Context, kind string, bytes int, duration time.Duration, err error)
}

// CacheHooks receives events from artifact cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, backend string)
	OnCacheMiss(ctx context.Context, backend string)
	OnCacheSet(ctx context.Context, backend string, size int)
}

// ServerHooks receives events from the HTTP render server.
type ServerHooks interface {
	// OnRequest fires when a render request is accepted.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse fires when a response is written.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopRenderHooks is the default RenderHooks implementation.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnLayoutStart(context.Context, string, int)                      {}
func (NoopRenderHooks) OnLayoutComplete(context.Context, string, time.Duration, error)  {}
func (NoopRenderHooks) OnRenderStart(context.Context, string)                           {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is the default CacheHooks implementation.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is the default ServerHooks implementation.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string) {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {
}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. Call once at startup
// before any chart construction.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom server hooks.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores every hook to its no-op default. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
