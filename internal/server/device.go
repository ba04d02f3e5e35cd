package server

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/folio/pkg/deck"
)

// HeaderMaxTouchPoints carries navigator.maxTouchPoints from the front-end.
const HeaderMaxTouchPoints = "X-Max-Touch-Points"

// environmentFromRequest builds detection signals from request headers. The
// Sec-CH-UA-Mobile client hint counts as a touch point when the front-end
// did not report one.
func environmentFromRequest(r *http.Request) *deck.Environment {
	env := &deck.Environment{
		Available: true,
		UserAgent: r.UserAgent(),
	}
	if v := r.Header.Get(HeaderMaxTouchPoints); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.MaxTouchPoints = n
		}
	}
	if env.MaxTouchPoints == 0 && r.Header.Get("Sec-CH-UA-Mobile") == "?1" {
		env.MaxTouchPoints = 1
	}
	return env
}
