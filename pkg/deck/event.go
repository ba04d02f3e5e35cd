package deck

import "sync"

// EventKind classifies input events the deck cares about.
type EventKind int

const (
	EventWheel EventKind = iota
	EventTouchStart
	EventTouchMove
	EventTouchEnd
)

func (k EventKind) String() string {
	switch k {
	case EventWheel:
		return "wheel"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Target is an opaque UI node. Only a Resolver interprets it.
type Target any

// Event is one input event travelling through an EventSource.
type Event struct {
	Kind   EventKind
	Target Target
	// X and Y locate the pointer for gesture tracking.
	X, Y int
	// Delta is the wheel delta; positive scrolls down.
	Delta int

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault cancels the host's default action (scrolling).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// StopPropagation stops delivery to later listeners.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// Handler receives events.
type Handler func(*Event)

// EventSource is where the interceptor attaches its listeners.
type EventSource interface {
	// AddListener registers h for kind and returns a func that removes exactly
	// that registration.
	AddListener(kind EventKind, h Handler) (remove func())
}

// Document is an in-process EventSource. Listeners run in registration order
// until one stops propagation.
type Document struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[EventKind][]listener
}

type listener struct {
	id int
	h  Handler
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{listeners: make(map[EventKind][]listener)}
}

// AddListener implements EventSource.
func (d *Document) AddListener(kind EventKind, h Handler) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listener{id: id, h: h})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			ls := d.listeners[kind]
			for i, l := range ls {
				if l.id == id {
					d.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
					return
				}
			}
		})
	}
}

// Dispatch delivers ev to the listeners registered for its kind and returns ev
// so callers can inspect DefaultPrevented.
func (d *Document) Dispatch(ev *Event) *Event {
	d.mu.RLock()
	ls := make([]listener, len(d.listeners[ev.Kind]))
	copy(ls, d.listeners[ev.Kind])
	d.mu.RUnlock()

	for _, l := range ls {
		l.h(ev)
		if ev.propagationStopped {
			break
		}
	}
	return ev
}

// ListenerCount returns the number of listeners registered for kind.
func (d *Document) ListenerCount(kind EventKind) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[kind])
}

var _ EventSource = (*Document)(nil)
