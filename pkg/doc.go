// Package pkg provides the libraries behind folio's sectioned portfolio deck.
//
// # Overview
//
// A deck is an ordered catalog of full-screen sections. Navigation between
// them is debounced: one transition settles at a time, with a longer settle
// delay on touch-primary devices. The pkg directory is organized as:
//
//  1. [deck] - Catalog, device detection, debounced navigation controller,
//     input interception and view lifecycle
//  2. [clock] - Injectable time source for timers
//  3. [session] - Per-visitor mounted views for the HTTP server
//  4. [errors] - Coded errors shared by the CLI and server
//  5. [observability] - Hooks for navigation, input and session events
//
// # Quick Start
//
//	view := deck.Mount(deck.DefaultCatalog(), deck.MountOptions{
//	    Environment: &deck.Environment{Available: true, UserAgent: ua},
//	})
//	defer view.Unmount()
//
//	view.Controller.GoTo(deck.SectionMatrix)
//
// [deck]: github.com/matzehuels/folio/pkg/deck
// [clock]: github.com/matzehuels/folio/pkg/clock
// [session]: github.com/matzehuels/folio/pkg/session
// [errors]: github.com/matzehuels/folio/pkg/errors
// [observability]: github.com/matzehuels/folio/pkg/observability
package pkg
