// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about section navigation, input interception and visitor
// sessions.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the deck core dependency-free from observability frameworks
//   - Allows different backends (log lines, Prometheus, OpenTelemetry, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetNavigationHooks(&myNavigationHooks{})
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Navigation().OnTransitionRequested(ctx, "hero", "profile")
//	// ... settle delay elapses ...
//	observability.Navigation().OnTransitionCommitted(ctx, "hero", "profile", delay)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Navigation Hooks
// =============================================================================

// NavigationHooks receives events from the section navigation controller.
type NavigationHooks interface {
	// OnTransitionRequested records a request accepted by the debounce gate.
	OnTransitionRequested(ctx context.Context, from, to string)

	// OnTransitionDropped records a request that did not reach the gate or was
	// dropped by it. reason is "pending", "unknown" or "boundary".
	OnTransitionDropped(ctx context.Context, target, reason string)

	// OnTransitionCommitted records a committed state change.
	OnTransitionCommitted(ctx context.Context, from, to string, settle time.Duration)
}

// =============================================================================
// Input Hooks
// =============================================================================

// InputHooks receives events from the scroll/wheel interceptor.
type InputHooks interface {
	// OnIntercept records an event whose default action was cancelled because
	// it targeted an inactive section.
	OnIntercept(ctx context.Context, kind, section string)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events about mounted visitor sessions.
type SessionHooks interface {
	// OnSessionStart records a newly mounted session.
	OnSessionStart(ctx context.Context, id string, touchPrimary bool)

	// OnSessionEnd records an unmounted session and how long it lived.
	OnSessionEnd(ctx context.Context, id string, lifetime time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopNavigationHooks is a no-op implementation of NavigationHooks.
type NoopNavigationHooks struct{}

func (NoopNavigationHooks) OnTransitionRequested(context.Context, string, string) {}
func (NoopNavigationHooks) OnTransitionDropped(context.Context, string, string)   {}
func (NoopNavigationHooks) OnTransitionCommitted(context.Context, string, string, time.Duration) {
}

// NoopInputHooks is a no-op implementation of InputHooks.
type NoopInputHooks struct{}

func (NoopInputHooks) OnIntercept(context.Context, string, string) {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStart(context.Context, string, bool)        {}
func (NoopSessionHooks) OnSessionEnd(context.Context, string, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	navigationHooks NavigationHooks = NoopNavigationHooks{}
	inputHooks      InputHooks      = NoopInputHooks{}
	sessionHooks    SessionHooks    = NoopSessionHooks{}
	hooksMu         sync.RWMutex
)

// SetNavigationHooks registers custom navigation hooks.
// This should be called once at application startup before any deck is mounted.
func SetNavigationHooks(h NavigationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		navigationHooks = h
	}
}

// SetInputHooks registers custom input hooks.
// This should be called once at application startup before any deck is mounted.
func SetInputHooks(h InputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inputHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before the server starts.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Navigation returns the registered navigation hooks.
func Navigation() NavigationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return navigationHooks
}

// Input returns the registered input hooks.
func Input() InputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inputHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	navigationHooks = NoopNavigationHooks{}
	inputHooks = NoopInputHooks{}
	sessionHooks = NoopSessionHooks{}
}
