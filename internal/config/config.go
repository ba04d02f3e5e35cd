// Package config loads folio's TOML configuration.
//
// A configuration file looks like:
//
//	[navigation]
//	touch_delay = "500ms"
//	desktop_delay = "300ms"
//	throttle = "16ms"
//	swipe_threshold = 50
//
//	[server]
//	addr = ":8080"
//	session_ttl = "30m"
//
//	[[sections]]
//	id = "hero"
//	title = "Hello"
//	lines = ["..."]
//
// Values missing from the file keep their defaults. Environment variables
// FOLIO_ADDR, FOLIO_TOUCH_DELAY and FOLIO_DESKTOP_DELAY override the file.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/folio/pkg/deck"
	"github.com/matzehuels/folio/pkg/errors"
)

// Environment variable names.
const (
	EnvAddr         = "FOLIO_ADDR"
	EnvTouchDelay   = "FOLIO_TOUCH_DELAY"
	EnvDesktopDelay = "FOLIO_DESKTOP_DELAY"
)

// Defaults for the server section.
const (
	DefaultAddr            = ":8080"
	DefaultSessionTTL      = 30 * time.Minute
	DefaultCleanupInterval = time.Minute
)

// Config is the full application configuration.
type Config struct {
	Navigation Navigation `toml:"navigation"`
	Server     Server     `toml:"server"`
	Sections   []Section  `toml:"sections"`
}

// Navigation holds the deck tunables. Durations are TOML strings such as "300ms".
type Navigation struct {
	TouchDelay     duration `toml:"touch_delay"`
	DesktopDelay   duration `toml:"desktop_delay"`
	Throttle       duration `toml:"throttle"`
	SwipeThreshold int      `toml:"swipe_threshold"`
	Maintenance    duration `toml:"maintenance"`
}

// Server configures `folio serve`.
type Server struct {
	Addr            string   `toml:"addr"`
	SessionTTL      duration `toml:"session_ttl"`
	CleanupInterval duration `toml:"cleanup_interval"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// Section is one deck section and the text presented in it.
type Section struct {
	ID    string   `toml:"id"`
	Title string   `toml:"title"`
	Lines []string `toml:"lines"`
}

// duration decodes TOML strings like "300ms".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	t := deck.DefaultTimings()
	return &Config{
		Navigation: Navigation{
			TouchDelay:     duration{t.TouchDelay},
			DesktopDelay:   duration{t.DesktopDelay},
			Throttle:       duration{t.Throttle},
			SwipeThreshold: t.SwipeThreshold,
			Maintenance:    duration{t.Maintenance},
		},
		Server: Server{
			Addr:            DefaultAddr,
			SessionTTL:      duration{DefaultSessionTTL},
			CleanupInterval: duration{DefaultCleanupInterval},
			AllowedOrigins:  []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Sections: defaultSections(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path loads only defaults and environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes TOML data over cfg. A file that declares [[sections]]
// replaces the default section list entirely.
func (c *Config) Decode(data []byte) error {
	sections := c.Sections
	c.Sections = nil
	if _, err := toml.Decode(string(data), c); err != nil {
		c.Sections = sections
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if len(c.Sections) == 0 {
		c.Sections = sections
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	for name, dst := range map[string]*duration{
		EnvTouchDelay:   &c.Navigation.TouchDelay,
		EnvDesktopDelay: &c.Navigation.DesktopDelay,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if err := dst.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s=%q", name, v)
		}
	}
	return nil
}

// Validate checks the configuration for values the deck cannot run with.
func (c *Config) Validate() error {
	if c.Navigation.TouchDelay.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "navigation.touch_delay must be positive")
	}
	if c.Navigation.DesktopDelay.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "navigation.desktop_delay must be positive")
	}
	if c.Navigation.Throttle.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "navigation.throttle cannot be negative")
	}
	if c.Server.SessionTTL.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.session_ttl must be positive")
	}
	if _, err := c.Catalog(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sections")
	}
	return nil
}

// Timings converts the navigation section to deck timings.
func (c *Config) Timings() deck.Timings {
	return deck.Timings{
		TouchDelay:     c.Navigation.TouchDelay.Duration,
		DesktopDelay:   c.Navigation.DesktopDelay.Duration,
		Throttle:       c.Navigation.Throttle.Duration,
		SwipeThreshold: c.Navigation.SwipeThreshold,
		Maintenance:    c.Navigation.Maintenance.Duration,
	}.WithDefaults()
}

// Catalog builds the deck catalog from the configured sections.
func (c *Config) Catalog() (*deck.Catalog, error) {
	ids := make([]deck.SectionID, len(c.Sections))
	for i, s := range c.Sections {
		ids[i] = deck.SectionID(s.ID)
	}
	return deck.NewCatalog(ids...)
}

// Section returns the section with id.
func (c *Config) Section(id deck.SectionID) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == string(id) {
			return s, true
		}
	}
	return Section{}, false
}

// SessionTTL returns the visitor session lifetime.
func (c *Config) SessionTTL() time.Duration { return c.Server.SessionTTL.Duration }

// CleanupInterval returns how often expired sessions are swept.
func (c *Config) CleanupInterval() time.Duration {
	if c.Server.CleanupInterval.Duration <= 0 {
		return DefaultCleanupInterval
	}
	return c.Server.CleanupInterval.Duration
}
