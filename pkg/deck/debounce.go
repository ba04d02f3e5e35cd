package deck

import (
	"sync"
	"time"

	"github.com/matzehuels/folio/pkg/clock"
)

// DebounceState is the state of a Debouncer.
type DebounceState int

const (
	// Idle accepts the next request.
	Idle DebounceState = iota
	// Pending has a transition scheduled; requests are dropped.
	Pending
)

func (s DebounceState) String() string {
	if s == Pending {
		return "pending"
	}
	return "idle"
}

// Debouncer lets at most one transition be in flight. A request made while
// Idle is scheduled to commit after its delay; requests made while Pending are
// dropped, not queued and not allowed to replace the pending target. The
// first request of a burst therefore wins.
//
// Each pending timer is registered with the owning view's Registry, so
// disposing the registry guarantees the commit never runs. A disposal that
// races an in-flight commit waits for that commit to return. The commit runs
// without holding any debouncer lock, so it may request and tear down again.
type Debouncer struct {
	clock    clock.Clock
	registry *Registry

	mu      sync.Mutex
	pending *pendingTransition
}

type pendingTransition struct {
	target    SectionID
	timer     clock.Timer
	release   func()
	cancelled bool
	firing    bool
	done      chan struct{} // closed when apply returns
}

// NewDebouncer creates a debouncer. A nil clock means the real clock; a nil
// registry gets a private one.
func NewDebouncer(clk clock.Clock, registry *Registry) *Debouncer {
	if clk == nil {
		clk = clock.Real()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Debouncer{clock: clk, registry: registry}
}

// Request schedules apply(target) after delay if the debouncer is Idle and
// reports whether the request was accepted.
func (d *Debouncer) Request(apply func(SectionID), target SectionID, delay time.Duration) bool {
	d.mu.Lock()
	if d.pending != nil {
		d.mu.Unlock()
		return false
	}
	p := &pendingTransition{target: target, done: make(chan struct{})}
	d.pending = p
	d.mu.Unlock()

	// Registering with a closed registry cancels p immediately.
	release := d.registry.Register(DisposeFunc(func() { d.cancel(p) }))

	d.mu.Lock()
	defer d.mu.Unlock()
	if p.cancelled {
		return false
	}
	p.release = release
	p.timer = d.clock.AfterFunc(delay, func() { d.fire(p, apply) })
	return true
}

// State reports whether a transition is pending.
func (d *Debouncer) State() DebounceState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		return Pending
	}
	return Idle
}

// Target returns the pending target, if any.
func (d *Debouncer) Target() (SectionID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return "", false
	}
	return d.pending.target, true
}

// Cancel drops the pending transition, if any, and returns to Idle.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	p := d.pending
	var release func()
	if p != nil {
		release = p.release
	}
	d.mu.Unlock()
	if p == nil {
		return
	}
	d.cancel(p)
	if release != nil {
		release()
	}
}

// cancel stops p. If p is already committing on another goroutine, cancel
// waits for it. p's registry handle is released before apply runs, so a
// teardown started from inside apply never reaches p itself.
func (d *Debouncer) cancel(p *pendingTransition) {
	d.mu.Lock()
	p.cancelled = true
	if d.pending == p {
		d.pending = nil
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	firing := p.firing
	d.mu.Unlock()

	if firing {
		<-p.done
	}
}

func (d *Debouncer) fire(p *pendingTransition, apply func(SectionID)) {
	d.mu.Lock()
	if p.cancelled || d.pending != p {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	p.firing = true
	release := p.release
	d.mu.Unlock()
	defer close(p.done)

	if release != nil {
		release()
	}
	apply(p.target)
}
