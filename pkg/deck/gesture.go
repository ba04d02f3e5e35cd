package deck

import "sync"

// SwipeTracker turns a touch start/end pair into a navigation direction.
// A swipe counts when horizontal travel reaches the threshold and exceeds
// vertical travel; swiping left advances.
type SwipeTracker struct {
	threshold int

	mu     sync.Mutex
	active bool
	startX int
	startY int
}

// NewSwipeTracker creates a tracker. A non-positive threshold means
// DefaultSwipeThreshold.
func NewSwipeTracker(threshold int) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold}
}

// Start records the touch origin.
func (s *SwipeTracker) Start(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.startX, s.startY = x, y
}

// End finishes the gesture at (x, y) and returns the direction to navigate,
// or false if the gesture was not a horizontal swipe.
func (s *SwipeTracker) End(x, y int) (Direction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return 0, false
	}
	s.active = false

	dx := x - s.startX
	dy := abs(y - s.startY)
	if abs(dx) < s.threshold || abs(dx) <= dy {
		return 0, false
	}
	if dx < 0 {
		return Next, true
	}
	return Previous, true
}

// Handle feeds touch events to the tracker and returns a direction when a
// touch end completes a swipe.
func (s *SwipeTracker) Handle(ev *Event) (Direction, bool) {
	switch ev.Kind {
	case EventTouchStart:
		s.Start(ev.X, ev.Y)
	case EventTouchEnd:
		return s.End(ev.X, ev.Y)
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DirectionForKey maps keyboard keys to navigation directions.
func DirectionForKey(key string) (Direction, bool) {
	switch key {
	case "left", "h", "pgup", "shift+tab":
		return Previous, true
	case "right", "l", "pgdown", "tab":
		return Next, true
	default:
		return 0, false
	}
}
