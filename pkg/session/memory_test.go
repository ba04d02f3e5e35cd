package session

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/deck"
	"github.com/matzehuels/folio/pkg/errors"
)

func newTestStore(t *testing.T, ttl time.Duration) (*MemoryStore, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Unix(1_700_000_000, 0))
	store := NewMemoryStore(Options{TTL: ttl, Clock: clk})
	t.Cleanup(func() { store.Close() })
	return store, clk
}

func mountOn(clk clock.Clock) MountFunc {
	return func() *deck.View {
		return deck.Mount(deck.DefaultCatalog(), deck.MountOptions{Clock: clk})
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(t, time.Minute)

	sess, err := store.Create(ctx, mountOn(clk))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !ValidID(sess.ID) {
		t.Errorf("session ID %q is not a UUID", sess.ID)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Error("Get should return the stored session")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestGetUnknown(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	_, err := store.Get(context.Background(), GenerateID())
	if !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Get(unknown) = %v, want %s", err, errors.ErrCodeSessionNotFound)
	}
}

func TestGetExtendsExpiry(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(t, time.Minute)
	sess, _ := store.Create(ctx, mountOn(clk))

	clk.Advance(50 * time.Second)
	if _, err := store.Get(ctx, sess.ID); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}
	clk.Advance(50 * time.Second)
	if _, err := store.Get(ctx, sess.ID); err != nil {
		t.Fatalf("Get after touch should extend expiry: %v", err)
	}
}

func TestExpiredSessionIsUnmounted(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(t, time.Minute)
	sess, _ := store.Create(ctx, mountOn(clk))

	sess.View.Controller.GoTo(deck.SectionProjects)
	clk.Advance(2 * time.Minute)

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, errors.ErrCodeSessionExpired) {
		t.Fatalf("Get(expired) = %v, want %s", err, errors.ErrCodeSessionExpired)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("second Get(expired) = %v, want %s", err, errors.ErrCodeSessionNotFound)
	}
	if sess.View.Mounted() {
		t.Error("expired session view should be unmounted")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(t, time.Minute)

	old, _ := store.Create(ctx, mountOn(clk))
	clk.Advance(45 * time.Second)
	fresh, _ := store.Create(ctx, mountOn(clk))
	clk.Advance(30 * time.Second)

	n, err := store.Cleanup(ctx)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if n != 1 {
		t.Errorf("Cleanup removed %d, want 1", n)
	}
	if old.View.Mounted() {
		t.Error("expired view still mounted")
	}
	if !fresh.View.Mounted() {
		t.Error("live view was unmounted")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(t, time.Minute)
	sess, _ := store.Create(ctx, mountOn(clk))

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if sess.View.Mounted() {
		t.Error("deleted session view still mounted")
	}
}

func TestCreateRejectsNilMount(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	if _, err := store.Create(context.Background(), nil); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Create(nil) = %v, want %s", err, errors.ErrCodeInternal)
	}
	if _, err := store.Create(context.Background(), func() *deck.View { return nil }); err == nil {
		t.Error("Create with nil view should fail")
	}
}

func TestCloseUnmountsAll(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Unix(0, 0))
	store := NewMemoryStore(Options{Clock: clk})

	a, _ := store.Create(ctx, mountOn(clk))
	b, _ := store.Create(ctx, mountOn(clk))
	store.Close()

	if a.View.Mounted() || b.View.Mounted() {
		t.Error("Close should unmount every session")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", store.Len())
	}
}
