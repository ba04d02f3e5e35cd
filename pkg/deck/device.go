package deck

import (
	"regexp"
	"time"
)

// mobileUserAgent matches user agents of phones and tablets.
var mobileUserAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// Environment carries the platform signals used for device classification.
// A nil Environment, or one with Available unset, describes a non-interactive
// context such as server-side rendering.
type Environment struct {
	Available      bool
	UserAgent      string
	MaxTouchPoints int
}

// Profile is the device classification computed once per mount.
type Profile struct {
	TouchPrimary bool `json:"touch_primary"`
}

// Detect classifies env. It never fails; an unavailable environment yields the
// desktop profile.
func Detect(env *Environment) Profile {
	if env == nil || !env.Available {
		return Profile{}
	}
	return Profile{
		TouchPrimary: mobileUserAgent.MatchString(env.UserAgent) || env.MaxTouchPoints > 0,
	}
}

// SettleDelay returns the debounce delay for the profile.
func (p Profile) SettleDelay(t Timings) time.Duration {
	t = t.WithDefaults()
	if p.TouchPrimary {
		return t.TouchDelay
	}
	return t.DesktopDelay
}

// TouchThrottle returns the touch-move throttle interval, or zero when
// touch-move events are handled unthrottled.
func (p Profile) TouchThrottle(t Timings) time.Duration {
	if !p.TouchPrimary {
		return 0
	}
	return t.WithDefaults().Throttle
}

func (p Profile) String() string {
	if p.TouchPrimary {
		return "touch"
	}
	return "desktop"
}
