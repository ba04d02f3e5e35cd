package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/observability"
)

// Options configures a MemoryStore.
type Options struct {
	// TTL is the idle lifetime; zero means DefaultTTL.
	TTL time.Duration
	// Clock provides the current time; nil means the real clock.
	Clock clock.Clock
	// Logger receives lifecycle messages; nil means log.Default().
	Logger *log.Logger
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	ttl    time.Duration
	clock  clock.Clock
	logger *log.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts Options) *MemoryStore {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &MemoryStore{
		ttl:      opts.TTL,
		clock:    opts.Clock,
		logger:   opts.Logger,
		sessions: make(map[string]*Session),
	}
}

func (s *MemoryStore) Create(ctx context.Context, mount MountFunc) (*Session, error) {
	if mount == nil {
		return nil, errors.New(errors.ErrCodeInternal, "session mount func is nil")
	}
	view := mount()
	if view == nil {
		return nil, errors.New(errors.ErrCodeInternal, "session mount returned no view")
	}

	now := s.clock.Now()
	sess := &Session{
		ID:        GenerateID(),
		View:      view,
		CreatedAt: now,
		LastSeen:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("session started", "id", sess.ID, "profile", view.Profile())
	observability.Session().OnSessionStart(ctx, sess.ID, view.Profile().TouchPrimary)
	return sess, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	now := s.clock.Now()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id)
	}
	if sess.IsExpired(now) {
		delete(s.sessions, id)
		s.mu.Unlock()
		s.end(ctx, sess, now)
		return nil, errors.New(errors.ErrCodeSessionExpired, "session %s expired", id)
	}
	sess.LastSeen = now
	sess.ExpiresAt = now.Add(s.ttl)
	s.mu.Unlock()

	return sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		s.end(ctx, sess, s.clock.Now())
	}
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		s.end(ctx, sess, now)
	}
	return len(expired), nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	now := s.clock.Now()
	for _, sess := range all {
		s.end(context.Background(), sess, now)
	}
	return nil
}

// end unmounts the session's view outside the store lock.
func (s *MemoryStore) end(ctx context.Context, sess *Session, now time.Time) {
	sess.View.Unmount()
	s.logger.Debug("session ended", "id", sess.ID, "lifetime", sess.Lifetime(now).Round(time.Millisecond))
	observability.Session().OnSessionEnd(ctx, sess.ID, sess.Lifetime(now))
}

var _ Store = (*MemoryStore)(nil)
