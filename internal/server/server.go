// Package server exposes the deck over HTTP.
//
// Each visitor mounts a session holding its own navigation controller. A thin
// browser front-end posts navigation requests and renders the returned state;
// the debounce gate, boundary clamping and device-specific settle delays all
// run here.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/folio/internal/config"
	"github.com/matzehuels/folio/pkg/buildinfo"
	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/deck"
	"github.com/matzehuels/folio/pkg/session"
)

// Server is the HTTP deck server.
type Server struct {
	cfg     *config.Config
	catalog *deck.Catalog
	store   session.Store
	clock   clock.Clock
	logger  *log.Logger
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithClock sets the clock every mounted view schedules on.
func WithClock(c clock.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// WithStore replaces the default in-memory session store.
func WithStore(st session.Store) Option {
	return func(s *Server) { s.store = st }
}

// New creates a server for cfg.
func New(cfg *config.Config, logger *log.Logger, opts ...Option) (*Server, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		clock:   clock.Real(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = session.NewMemoryStore(session.Options{
			TTL:    cfg.SessionTTL(),
			Clock:  s.clock,
			Logger: logger,
		})
	}

	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderMaxTouchPoints, "Sec-CH-UA-Mobile"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Build:    buildinfo.Current(),
			Sessions: s.store.Len(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/deck", s.handleDeck)
		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/goto", s.handleGoTo)
			r.Post("/adjacent", s.handleAdjacent)
			r.Post("/home", s.handleHome)
		})
	})

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Store returns the session store.
func (s *Server) Store() session.Store { return s.store }

// Run listens on the configured address until ctx is cancelled, sweeping
// expired sessions in the background. All sessions are unmounted on return.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	defer s.store.Close()

	go s.sweep(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("deck server listening", "addr", s.cfg.Server.Addr, "sections", s.catalog.Len())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down deck server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// sweep periodically removes expired sessions until ctx ends.
func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.CleanupInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.Cleanup(ctx)
			if err != nil {
				s.logger.Warn("session cleanup failed", "err", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("expired sessions removed", "count", n, "live", s.store.Len())
			}
		}
	}
}

// requestLogger logs each request through charmbracelet/log.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
