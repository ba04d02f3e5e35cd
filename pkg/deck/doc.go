// Package deck implements single-active-section navigation for a
// slide-deck style presentation.
//
// A deck is a fixed, ordered [Catalog] of sections. Exactly one section is
// active at a time. The [Controller] owns that state and is the only entry
// point for transitions; every request passes through a [Debouncer] that lets
// one transition be in flight per settle window and drops the rest.
//
// # Components
//
// Leaves first:
//
//   - [Throttle]: leading-edge rate limiting for high-frequency input
//   - [Debouncer]: Idle/Pending gate for transition requests
//   - [Detect]: touch-primary vs desktop classification
//   - [Attach]: wheel/touch-move interception for inactive sections
//   - [Controller]: current section, adjacency, subscriptions
//   - [Registry]: deterministic teardown of timers
//
// [Mount] wires them together for one view lifetime and [View.Unmount] tears
// everything down.
//
// # Timing
//
// All scheduling goes through a [clock.Clock]. Tests inject [clock.NewFake]
// and advance time explicitly:
//
//	clk := clock.NewFake(time.Unix(0, 0))
//	c := deck.New(deck.DefaultCatalog(), deck.WithClock(clk))
//	c.GoTo("matrix")
//	c.GoTo("profile") // dropped: a transition is pending
//	clk.Advance(301 * time.Millisecond)
//	c.Current() // "matrix"
//
// # Concurrency
//
// The controller is safe for concurrent use. With the real clock, commits run
// on timer goroutines; subscribers must not block.
package deck
