package deck

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/observability"
)

// Resolver maps a UI target to the section that contains it.
type Resolver interface {
	SectionOf(target Target) (SectionID, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(target Target) (SectionID, bool)

// SectionOf calls f.
func (f ResolverFunc) SectionOf(target Target) (SectionID, bool) { return f(target) }

// InterceptOptions configures Attach.
type InterceptOptions struct {
	// Clock drives the touch-move throttle. Nil means the real clock.
	Clock clock.Clock
	// Throttle is the touch-move interval used on touch-primary profiles.
	// Zero means DefaultThrottle.
	Throttle time.Duration
	// Context is passed to observability hooks.
	Context context.Context
}

// Attach installs wheel and touch-move listeners on src that cancel events
// aimed at a section other than the active one. Events inside the active
// section, or outside every section, keep their default action so the active
// section's own content still scrolls.
//
// active must return the committed section, never a pending target. On
// touch-primary profiles the touch-move listener is throttled.
//
// A nil src makes Attach a no-op. The returned detach removes exactly the
// listeners added here and is safe to call repeatedly.
func Attach(src EventSource, profile Profile, resolver Resolver, active func() SectionID, opts InterceptOptions) (detach func()) {
	if src == nil || resolver == nil || active == nil {
		return func() {}
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	intercept := func(ev *Event) {
		id, ok := resolver.SectionOf(ev.Target)
		if !ok || id == active() {
			return
		}
		ev.PreventDefault()
		ev.StopPropagation()
		observability.Input().OnIntercept(ctx, ev.Kind.String(), string(id))
	}

	touch := intercept
	if profile.TouchPrimary {
		interval := opts.Throttle
		if interval <= 0 {
			interval = DefaultThrottle
		}
		touch = Throttle(opts.Clock, interval, intercept)
	}

	removers := []func(){
		src.AddListener(EventWheel, intercept),
		src.AddListener(EventTouchMove, touch),
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, remove := range removers {
				remove()
			}
		})
	}
}
