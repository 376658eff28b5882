// Package observability provides hooks for logging, progress, and metrics.
//
// Libraries emit events through a small global registry; the command layer
// decides what to do with them (debug logs, a progress bar). Nothing here
// depends on a particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    observability.SetAggregateHooks(&myProgress{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Aggregate().OnReposListed(ctx, user, len(repos))
//	// ... fetch releases per repository ...
//	observability.Aggregate().OnRepoFetched(ctx, repo, len(assets), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// Aggregate Hooks
// =============================================================================

// AggregateHooks receives events while releases are collected for a user.
// Calls to OnRepoFetched may arrive concurrently when parallel fetching is
// enabled.
type AggregateHooks interface {
	// OnReposListed fires once the repository list for user is known.
	OnReposListed(ctx context.Context, user string, count int)

	// OnRepoFetched fires after the releases of one repository were fetched.
	OnRepoFetched(ctx context.Context, repo string, assets int, duration time.Duration, err error)

	// OnAggregateComplete fires when aggregation finishes, successfully or not.
	OnAggregateComplete(ctx context.Context, user string, repos int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// NoopAggregateHooks is a no-op implementation of AggregateHooks.
type NoopAggregateHooks struct{}

func (NoopAggregateHooks) OnReposListed(context.Context, string, int)                             {}
func (NoopAggregateHooks) OnRepoFetched(context.Context, string, int, time.Duration, error)       {}
func (NoopAggregateHooks) OnAggregateComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	aggregateHooks AggregateHooks = NoopAggregateHooks{}
	hooksMu        sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// SetAggregateHooks registers custom aggregation hooks.
func SetAggregateHooks(h AggregateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		aggregateHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Aggregate returns the registered aggregation hooks.
func Aggregate() AggregateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return aggregateHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
	aggregateHooks = NoopAggregateHooks{}
}
