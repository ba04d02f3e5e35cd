package deck

import (
	"sync"
	"time"

	"github.com/matzehuels/folio/pkg/clock"
)

// Throttle wraps fn so it runs at most once per interval. The first call in a
// window runs immediately; calls made before interval has elapsed since the
// last run are dropped, never queued.
//
// A nil clock means the real clock. A non-positive interval returns fn as is.
func Throttle[T any](clk clock.Clock, interval time.Duration, fn func(T)) func(T) {
	if interval <= 0 {
		return fn
	}
	if clk == nil {
		clk = clock.Real()
	}

	var (
		mu      sync.Mutex
		last    time.Time
		started bool
	)
	return func(v T) {
		now := clk.Now()
		mu.Lock()
		if started && now.Sub(last) < interval {
			mu.Unlock()
			return
		}
		started = true
		last = now
		mu.Unlock()

		fn(v)
	}
}
