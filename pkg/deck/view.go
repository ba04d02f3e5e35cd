package deck

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/clock"
)

// MountOptions configures Mount.
type MountOptions struct {
	// Environment feeds device detection. Nil means a non-interactive context.
	Environment *Environment
	// Profile, when set, overrides detection.
	Profile *Profile
	// Timings are the tunables; zero fields use defaults.
	Timings Timings
	// Clock schedules every timer of the view. Nil means the real clock.
	Clock clock.Clock
	// Source is where the interceptor listens. Nil disables interception.
	Source EventSource
	// Resolver maps event targets to sections for the interceptor.
	Resolver Resolver
	// Maintenance runs periodically on touch-primary profiles.
	Maintenance func()
	// Logger receives debug output. Nil means log.Default().
	Logger *log.Logger
	// Context is passed to observability hooks.
	Context context.Context
}

// View is one mounted deck: a controller plus everything scheduled on its
// behalf. Create it with Mount and release it with Unmount.
type View struct {
	Controller *Controller

	profile  Profile
	registry *Registry
	swipe    *SwipeTracker
	detach   func()
	once     sync.Once
}

// Mount detects the device profile once, then wires a fresh registry,
// controller and interceptor for one view lifetime.
func Mount(catalog *Catalog, opts MountOptions) *View {
	timings := opts.Timings.WithDefaults()
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}

	profile := Detect(opts.Environment)
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	registry := NewRegistry()
	ctl := New(catalog,
		WithClock(clk),
		WithProfile(profile),
		WithTimings(timings),
		WithRegistry(registry),
		WithLogger(opts.Logger),
		WithContext(opts.Context),
	)

	v := &View{
		Controller: ctl,
		profile:    profile,
		registry:   registry,
		swipe:      NewSwipeTracker(timings.SwipeThreshold),
	}

	v.detach = Attach(opts.Source, profile, opts.Resolver, ctl.Current, InterceptOptions{
		Clock:    clk,
		Throttle: timings.Throttle,
		Context:  opts.Context,
	})
	registry.Register(DisposeFunc(v.detach))

	if profile.TouchPrimary && opts.Maintenance != nil {
		v.every(clk, timings.Maintenance, opts.Maintenance)
	}
	return v
}

// every runs fn each period until the registry is disposed.
func (v *View) every(clk clock.Clock, period time.Duration, fn func()) {
	var (
		mu      sync.Mutex
		timer   clock.Timer
		stopped bool
	)
	var tick func()
	tick = func() {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		mu.Unlock()

		fn()

		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			timer = clk.AfterFunc(period, tick)
		}
	}

	mu.Lock()
	timer = clk.AfterFunc(period, tick)
	mu.Unlock()

	v.registry.Register(DisposeFunc(func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		timer.Stop()
	}))
}

// Profile returns the profile detected at mount.
func (v *View) Profile() Profile { return v.profile }

// Registry returns the view's cleanup registry.
func (v *View) Registry() *Registry { return v.registry }

// HandleGesture feeds a touch event to the view's swipe tracker and navigates
// when the event completes a swipe. It reports whether a request was accepted.
func (v *View) HandleGesture(ev *Event) bool {
	dir, ok := v.swipe.Handle(ev)
	if !ok {
		return false
	}
	return v.Controller.GoToAdjacent(dir)
}

// HandleKey navigates for keyboard keys. It reports whether key was a
// navigation key, regardless of whether the gate accepted the request.
func (v *View) HandleKey(key string) bool {
	switch key {
	case "home", "g":
		v.Controller.GoHome()
		return true
	}
	dir, ok := DirectionForKey(key)
	if !ok {
		return false
	}
	v.Controller.GoToAdjacent(dir)
	return true
}

// Unmount detaches the interceptor and cancels every timer. It is idempotent.
func (v *View) Unmount() {
	v.once.Do(v.registry.DisposeAll)
}

// Mounted reports whether Unmount has not yet run.
func (v *View) Mounted() bool { return !v.registry.Closed() }
