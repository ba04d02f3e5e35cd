package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Navigation hooks
	n := NoopNavigationHooks{}
	n.OnTransitionRequested(ctx, "hero", "profile")
	n.OnTransitionDropped(ctx, "matrix", "pending")
	n.OnTransitionCommitted(ctx, "hero", "profile", 300*time.Millisecond)

	// Input hooks
	i := NoopInputHooks{}
	i.OnIntercept(ctx, "wheel", "projects")

	// Session hooks
	s := NoopSessionHooks{}
	s.OnSessionStart(ctx, "abc", true)
	s.OnSessionEnd(ctx, "abc", time.Minute)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Navigation().(NoopNavigationHooks); !ok {
		t.Error("Navigation() should return NoopNavigationHooks by default")
	}
	if _, ok := Input().(NoopInputHooks); !ok {
		t.Error("Input() should return NoopInputHooks by default")
	}
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}

	// Set custom hooks
	customNav := &testNavigationHooks{}
	SetNavigationHooks(customNav)
	if Navigation() != customNav {
		t.Error("SetNavigationHooks should set custom hooks")
	}

	customInput := &testInputHooks{}
	SetInputHooks(customInput)
	if Input() != customInput {
		t.Error("SetInputHooks should set custom hooks")
	}

	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Navigation().(NoopNavigationHooks); !ok {
		t.Error("Reset() should restore NoopNavigationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testNavigationHooks{}
	SetNavigationHooks(custom)

	// Setting nil should be ignored
	SetNavigationHooks(nil)

	if Navigation() != custom {
		t.Error("SetNavigationHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testNavigationHooks struct{ NoopNavigationHooks }
type testInputHooks struct{ NoopInputHooks }
type testSessionHooks struct{ NoopSessionHooks }
