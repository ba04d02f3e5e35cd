package deck

import (
	"testing"
	"time"
)

func TestThrottleBound(t *testing.T) {
	clk := newFakeClock()
	calls := 0
	fn := Throttle(clk, 100*time.Millisecond, func(int) { calls++ })

	for i := 0; i < 10; i++ {
		fn(i)
		clk.Advance(9 * time.Millisecond)
	}

	if calls != 1 {
		t.Errorf("calls = %d within one window, want 1", calls)
	}
}

func TestThrottleLeadingEdge(t *testing.T) {
	clk := newFakeClock()
	var got []int
	fn := Throttle(clk, 50*time.Millisecond, func(v int) { got = append(got, v) })

	fn(1) // fires immediately
	fn(2) // dropped
	clk.Advance(50 * time.Millisecond)
	fn(3) // new window
	clk.Advance(10 * time.Millisecond)
	fn(4) // dropped

	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("invocations = %v, want [1 3]", got)
	}
}

func TestThrottleDoesNotQueue(t *testing.T) {
	clk := newFakeClock()
	calls := 0
	fn := Throttle(clk, 20*time.Millisecond, func(struct{}) { calls++ })

	fn(struct{}{})
	fn(struct{}{})
	fn(struct{}{})
	clk.Advance(time.Second)

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (dropped calls must not run later)", calls)
	}
}

func TestThrottleZeroInterval(t *testing.T) {
	calls := 0
	fn := Throttle(nil, 0, func(int) { calls++ })
	fn(1)
	fn(2)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
