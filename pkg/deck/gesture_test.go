package deck

import "testing"

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           Direction
		ok             bool
	}{
		{name: "swipe left advances", x0: 200, y0: 10, x1: 100, y1: 15, want: Next, ok: true},
		{name: "swipe right goes back", x0: 100, y0: 10, x1: 200, y1: 5, want: Previous, ok: true},
		{name: "short swipe", x0: 100, y0: 10, x1: 120, y1: 10, ok: false},
		{name: "mostly vertical", x0: 100, y0: 0, x1: 160, y1: 200, ok: false},
		{name: "exact threshold", x0: 100, y0: 0, x1: 50, y1: 0, want: Next, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipeTracker(50)
			s.Start(tt.x0, tt.y0)
			got, ok := s.End(tt.x1, tt.y1)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("End() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSwipeTrackerRequiresStart(t *testing.T) {
	s := NewSwipeTracker(0)
	if _, ok := s.End(0, 0); ok {
		t.Error("End without Start should not report a swipe")
	}

	s.Start(0, 0)
	s.End(-100, 0)
	if _, ok := s.End(-200, 0); ok {
		t.Error("End should consume the gesture")
	}
}

func TestSwipeTrackerHandle(t *testing.T) {
	s := NewSwipeTracker(10)
	if _, ok := s.Handle(&Event{Kind: EventTouchStart, X: 50}); ok {
		t.Error("touchstart should not complete a swipe")
	}
	if _, ok := s.Handle(&Event{Kind: EventTouchMove, X: 30}); ok {
		t.Error("touchmove should not complete a swipe")
	}
	dir, ok := s.Handle(&Event{Kind: EventTouchEnd, X: 20})
	if !ok || dir != Next {
		t.Errorf("Handle(touchend) = %v, %v; want next, true", dir, ok)
	}
}

func TestDirectionForKey(t *testing.T) {
	tests := map[string]struct {
		want Direction
		ok   bool
	}{
		"left":  {Previous, true},
		"h":     {Previous, true},
		"right": {Next, true},
		"l":     {Next, true},
		"q":     {0, false},
	}
	for key, tt := range tests {
		got, ok := DirectionForKey(key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DirectionForKey(%q) = %v, %v; want %v, %v", key, got, ok, tt.want, tt.ok)
		}
	}
}
