package deck

import (
	"sync"

	"github.com/matzehuels/folio/pkg/clock"
)

// Disposable is a handle that can be cancelled once its owning view goes away.
// Dispose must tolerate handles that already completed.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() { f() }

// TimerDisposable adapts a clock.Timer. Stopping a fired timer is a no-op.
func TimerDisposable(t clock.Timer) Disposable {
	return DisposeFunc(func() { t.Stop() })
}

// Registry tracks the timers and listeners a mounted view creates so they can
// be torn down together.
//
// Once DisposeAll has run the registry is closed: anything registered
// afterwards is disposed immediately.
type Registry struct {
	mu     sync.Mutex
	nextID int
	items  map[int]Disposable
	order  []int
	closed bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[int]Disposable)}
}

// Register records d for disposal. The returned release func forgets d
// without disposing it, for handles that completed on their own; it is safe
// to call after DisposeAll.
func (r *Registry) Register(d Disposable) (release func()) {
	if d == nil {
		return func() {}
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		d.Dispose()
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.items[id] = d
	if len(r.order) > 2*len(r.items)+16 {
		r.compactLocked()
	}
	r.order = append(r.order, id)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.items, id)
		r.mu.Unlock()
	}
}

// DisposeAll disposes every registered handle exactly once, in registration
// order, and clears the registry. It is safe to call more than once.
func (r *Registry) DisposeAll() {
	r.mu.Lock()
	var pending []Disposable
	for _, id := range r.order {
		if d, ok := r.items[id]; ok {
			pending = append(pending, d)
		}
	}
	r.items = make(map[int]Disposable)
	r.order = nil
	r.closed = true
	r.mu.Unlock()

	for _, d := range pending {
		d.Dispose()
	}
}

// Len returns the number of handles awaiting disposal.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Closed reports whether DisposeAll has run.
func (r *Registry) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// compactLocked drops released ids from order.
func (r *Registry) compactLocked() {
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.items[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
}
