package deck

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/observability"
)

// Direction selects a neighbour in catalog order.
type Direction int

const (
	Previous Direction = iota - 1
	_
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "none"
	}
}

// ParseDirection parses "previous"/"prev" and "next".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "previous", "prev":
		return Previous, true
	case "next":
		return Next, true
	default:
		return 0, false
	}
}

// Reasons reported to observability when a request does not reach the gate.
const (
	dropPending  = "pending"
	dropUnknown  = "unknown"
	dropBoundary = "boundary"
	dropClosed   = "closed"
)

// ChangeFunc is notified after each commit.
type ChangeFunc func(from, to SectionID)

// Controller is the single source of truth for the active section and the
// single entry point for transition requests.
type Controller struct {
	catalog   *Catalog
	clock     clock.Clock
	profile   Profile
	timings   Timings
	registry  *Registry
	debouncer *Debouncer
	logger    *log.Logger
	ctx       context.Context

	mu       sync.RWMutex
	current  int
	nextSub  int
	subs     map[int]ChangeFunc
	subOrder []int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for settle delays.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

// WithProfile sets the device profile that selects the settle delay.
func WithProfile(p Profile) Option {
	return func(ctl *Controller) { ctl.profile = p }
}

// WithTimings sets the tunables. Zero fields fall back to defaults.
func WithTimings(t Timings) Option {
	return func(ctl *Controller) { ctl.timings = t.WithDefaults() }
}

// WithRegistry shares a cleanup registry with the controller.
func WithRegistry(r *Registry) Option {
	return func(ctl *Controller) {
		if r != nil {
			ctl.registry = r
		}
	}
}

// WithLogger sets the logger. Commits and drops are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(ctl *Controller) {
		if ctx != nil {
			ctl.ctx = ctx
		}
	}
}

// New creates a controller positioned on the catalog's first section.
// A nil catalog means DefaultCatalog.
func New(catalog *Catalog, opts ...Option) *Controller {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	c := &Controller{
		catalog: catalog,
		clock:   clock.Real(),
		timings: DefaultTimings(),
		logger:  log.Default(),
		ctx:     context.Background(),
		subs:    make(map[int]ChangeFunc),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = NewRegistry()
	}
	c.debouncer = NewDebouncer(c.clock, c.registry)
	return c
}

// =============================================================================
// Reads
// =============================================================================

// Catalog returns the controller's catalog.
func (c *Controller) Catalog() *Catalog { return c.catalog }

// Len returns the number of sections.
func (c *Controller) Len() int { return c.catalog.Len() }

// CurrentIndex returns the index of the active section.
func (c *Controller) CurrentIndex() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Current returns the active section.
func (c *Controller) Current() SectionID {
	return c.catalog.At(c.CurrentIndex())
}

// IsFirst reports whether the active section is the first one.
func (c *Controller) IsFirst() bool { return c.CurrentIndex() == 0 }

// IsLast reports whether the active section is the final one.
func (c *Controller) IsLast() bool { return c.CurrentIndex() == c.catalog.Len()-1 }

// Progress returns the active position as a fraction in [0, 1].
// A single-section catalog reports 1.
func (c *Controller) Progress() float64 {
	n := c.catalog.Len()
	if n <= 1 {
		return 1
	}
	return float64(c.CurrentIndex()) / float64(n-1)
}

// Pending reports whether a transition is waiting to commit.
func (c *Controller) Pending() bool { return c.debouncer.State() == Pending }

// Profile returns the device profile.
func (c *Controller) Profile() Profile { return c.profile }

// Delay returns the settle delay in effect.
func (c *Controller) Delay() time.Duration { return c.profile.SettleDelay(c.timings) }

// Registry returns the cleanup registry owning the controller's timers.
func (c *Controller) Registry() *Registry { return c.registry }

// =============================================================================
// Requests
// =============================================================================

// GoTo requests a transition to id. Unknown ids are ignored. Requesting the
// active section is a normal request and goes through the gate. It reports
// whether the gate accepted the request.
func (c *Controller) GoTo(id SectionID) bool {
	if !c.catalog.Contains(id) {
		c.logger.Debug("ignoring navigation to unknown section", "section", id)
		observability.Navigation().OnTransitionDropped(c.ctx, string(id), dropUnknown)
		return false
	}
	return c.request(id)
}

// GoToAdjacent requests the neighbour in dir. At either end of the catalog
// the request is a no-op; navigation never wraps.
func (c *Controller) GoToAdjacent(dir Direction) bool {
	if dir != Previous && dir != Next {
		return false
	}
	target := c.CurrentIndex() + int(dir)
	if target < 0 || target >= c.catalog.Len() {
		c.logger.Debug("navigation clamped at boundary", "direction", dir, "section", c.Current())
		observability.Navigation().OnTransitionDropped(c.ctx, dir.String(), dropBoundary)
		return false
	}
	return c.request(c.catalog.At(target))
}

// GoHome requests the first section.
func (c *Controller) GoHome() bool {
	return c.GoTo(c.catalog.First())
}

func (c *Controller) request(target SectionID) bool {
	delay := c.Delay()
	if !c.debouncer.Request(c.commit, target, delay) {
		if c.registry.Closed() {
			c.logger.Debug("navigation dropped, view closed", "target", target)
			observability.Navigation().OnTransitionDropped(c.ctx, string(target), dropClosed)
			return false
		}
		c.logger.Debug("navigation dropped, transition pending", "target", target)
		observability.Navigation().OnTransitionDropped(c.ctx, string(target), dropPending)
		return false
	}
	observability.Navigation().OnTransitionRequested(c.ctx, string(c.Current()), string(target))
	return true
}

// commit is the only writer of the active section.
func (c *Controller) commit(target SectionID) {
	idx, ok := c.catalog.Index(target)
	if !ok {
		return
	}

	c.mu.Lock()
	from := c.catalog.At(c.current)
	c.current = idx
	subs := make([]ChangeFunc, 0, len(c.subOrder))
	for _, id := range c.subOrder {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	c.mu.Unlock()

	c.logger.Debug("section committed", "from", from, "to", target)
	observability.Navigation().OnTransitionCommitted(c.ctx, string(from), string(target), c.Delay())

	for _, fn := range subs {
		fn(from, target)
	}
}

// Subscribe registers fn to run after every commit. fn runs on the commit's
// goroutine and must not block.
func (c *Controller) Subscribe(fn ChangeFunc) (unsubscribe func()) {
	c.mu.Lock()
	c.nextSub++
	id := c.nextSub
	c.subs[id] = fn
	c.subOrder = append(c.subOrder, id)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
		for i, sid := range c.subOrder {
			if sid == id {
				c.subOrder = append(c.subOrder[:i:i], c.subOrder[i+1:]...)
				break
			}
		}
	}
}

// Close cancels every timer the controller owns. A pending transition never
// commits after Close returns.
func (c *Controller) Close() {
	c.registry.DisposeAll()
}
