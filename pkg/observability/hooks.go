// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks at
// startup to receive events about tooltip lifecycle and API traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Tooltip events fire synchronously on the host's event loop, once per hover
// or pointer move, so implementations must be cheap and must not block.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTooltipHooks(&myTooltipHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tooltip().OnShow(chartID, text)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tooltip Hooks
// =============================================================================

// TooltipHooks receives events from tooltip binders.
type TooltipHooks interface {
	// Lifecycle events
	OnBind(chartID string)
	OnShutdown(chartID string)

	// Surface events
	OnShow(chartID, text string)
	OnHide(chartID string)
	OnMove(chartID string, x, y float64)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed with an error.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTooltipHooks is a no-op implementation of TooltipHooks.
type NoopTooltipHooks struct{}

func (NoopTooltipHooks) OnBind(string)                   {}
func (NoopTooltipHooks) OnShutdown(string)               {}
func (NoopTooltipHooks) OnShow(string, string)           {}
func (NoopTooltipHooks) OnHide(string)                   {}
func (NoopTooltipHooks) OnMove(string, float64, float64) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	tooltipHooks TooltipHooks = NoopTooltipHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetTooltipHooks registers custom tooltip hooks.
// This should be called once at application startup before any chart is bound.
func SetTooltipHooks(h TooltipHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		tooltipHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Tooltip returns the registered tooltip hooks.
func Tooltip() TooltipHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return tooltipHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	tooltipHooks = NoopTooltipHooks{}
	httpHooks = NoopHTTPHooks{}
}
