// Package session tracks visitor sessions for the HTTP deck server.
//
// Each session owns one mounted [deck.View]: its own controller, debounce gate
// and cleanup registry. Nothing is persisted; a session lives until it expires
// or is deleted, and ending it unmounts the view so no pending transition can
// commit afterwards.
//
// # Usage
//
//	store := session.NewMemoryStore(session.Options{TTL: 30 * time.Minute})
//	defer store.Close()
//
//	sess, err := store.Create(ctx, func() *deck.View {
//	    return deck.Mount(catalog, deck.MountOptions{Environment: env})
//	})
//	...
//	sess, err = store.Get(ctx, id)
//	if errors.Is(err, errors.ErrCodeSessionExpired) {
//	    // timed out; start a new one
//	}
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/folio/pkg/deck"
)

// Default durations.
const (
	// DefaultTTL is the default idle lifetime of a visitor session.
	DefaultTTL = 30 * time.Minute
)

// Session is one visitor's mounted deck.
type Session struct {
	ID        string
	View      *deck.View
	CreatedAt time.Time
	LastSeen  time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session has outlived its TTL at now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Lifetime returns how long the session has existed at now.
func (s *Session) Lifetime(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// MountFunc builds the view for a new session.
type MountFunc func() *deck.View

// Store is the interface for session storage backends.
type Store interface {
	// Create mounts a view and stores a new session for it.
	Create(ctx context.Context, mount MountFunc) (*Session, error)

	// Get retrieves a session by ID and extends its expiry.
	// Unknown sessions return SESSION_NOT_FOUND. A session past its TTL
	// returns SESSION_EXPIRED once and is then forgotten.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete unmounts and removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup unmounts and removes expired sessions, returning how many it removed.
	Cleanup(ctx context.Context) (int, error)

	// Len returns the number of live sessions.
	Len() int

	// Close unmounts every session.
	Close() error
}

// GenerateID creates a random session ID.
func GenerateID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape of a generated session ID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
