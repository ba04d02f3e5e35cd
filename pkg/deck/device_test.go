package deck

import (
	"testing"
	"time"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  *Environment
		want bool
	}{
		{name: "nil environment", env: nil, want: false},
		{name: "unavailable", env: &Environment{UserAgent: "iPhone", MaxTouchPoints: 5}, want: false},
		{name: "desktop chrome", env: &Environment{Available: true, UserAgent: "Mozilla/5.0 (X11; Linux x86_64) Chrome/120"}, want: false},
		{name: "iphone", env: &Environment{Available: true, UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"}, want: true},
		{name: "android lowercase", env: &Environment{Available: true, UserAgent: "mozilla/5.0 (linux; android 14)"}, want: true},
		{name: "opera mini", env: &Environment{Available: true, UserAgent: "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)"}, want: true},
		{name: "touch laptop", env: &Environment{Available: true, UserAgent: "Mozilla/5.0 (Windows NT 10.0)", MaxTouchPoints: 10}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.env).TouchPrimary; got != tt.want {
				t.Errorf("Detect().TouchPrimary = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	env := &Environment{Available: true, UserAgent: "Mozilla/5.0 (iPad; CPU OS 16_0)", MaxTouchPoints: 0}
	first := Detect(env)
	for i := 0; i < 100; i++ {
		if got := Detect(env); got != first {
			t.Fatalf("Detect() call %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestProfileTimings(t *testing.T) {
	timings := Timings{TouchDelay: 700 * time.Millisecond}

	touch := Profile{TouchPrimary: true}
	if got := touch.SettleDelay(timings); got != 700*time.Millisecond {
		t.Errorf("touch SettleDelay = %v, want 700ms", got)
	}
	if got := touch.TouchThrottle(timings); got != DefaultThrottle {
		t.Errorf("touch TouchThrottle = %v, want %v", got, DefaultThrottle)
	}

	desktop := Profile{}
	if got := desktop.SettleDelay(timings); got != DefaultDesktopDelay {
		t.Errorf("desktop SettleDelay = %v, want %v", got, DefaultDesktopDelay)
	}
	if got := desktop.TouchThrottle(timings); got != 0 {
		t.Errorf("desktop TouchThrottle = %v, want 0", got)
	}

	if touch.String() != "touch" || desktop.String() != "desktop" {
		t.Errorf("String() = %q/%q", touch.String(), desktop.String())
	}
}
