package deck

import "time"

// Default timing constants.
const (
	DefaultTouchDelay     = 500 * time.Millisecond
	DefaultDesktopDelay   = 300 * time.Millisecond
	DefaultThrottle       = 16 * time.Millisecond
	DefaultSwipeThreshold = 50
	DefaultMaintenance    = 30 * time.Second
)

// Timings holds the deck's tunables.
type Timings struct {
	// TouchDelay is the settle delay on touch-primary devices.
	TouchDelay time.Duration `json:"touch_delay" toml:"touch_delay"`
	// DesktopDelay is the settle delay everywhere else.
	DesktopDelay time.Duration `json:"desktop_delay" toml:"desktop_delay"`
	// Throttle bounds touch-move interception on touch-primary devices.
	Throttle time.Duration `json:"throttle" toml:"throttle"`
	// SwipeThreshold is the horizontal travel that counts as a swipe.
	SwipeThreshold int `json:"swipe_threshold" toml:"swipe_threshold"`
	// Maintenance is the period of the touch-primary maintenance task.
	Maintenance time.Duration `json:"maintenance" toml:"maintenance"`
}

// DefaultTimings returns the standard timings.
func DefaultTimings() Timings {
	return Timings{
		TouchDelay:     DefaultTouchDelay,
		DesktopDelay:   DefaultDesktopDelay,
		Throttle:       DefaultThrottle,
		SwipeThreshold: DefaultSwipeThreshold,
		Maintenance:    DefaultMaintenance,
	}
}

// WithDefaults returns t with every non-positive field replaced by its default.
func (t Timings) WithDefaults() Timings {
	d := DefaultTimings()
	if t.TouchDelay <= 0 {
		t.TouchDelay = d.TouchDelay
	}
	if t.DesktopDelay <= 0 {
		t.DesktopDelay = d.DesktopDelay
	}
	if t.Throttle <= 0 {
		t.Throttle = d.Throttle
	}
	if t.SwipeThreshold <= 0 {
		t.SwipeThreshold = d.SwipeThreshold
	}
	if t.Maintenance <= 0 {
		t.Maintenance = d.Maintenance
	}
	return t
}
