package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/folio/pkg/buildinfo"
	"github.com/matzehuels/folio/pkg/deck"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/session"
)

// =============================================================================
// Response types
// =============================================================================

type healthResponse struct {
	Status   string         `json:"status"`
	Build    buildinfo.Info `json:"build"`
	Sessions int            `json:"sessions"`
}

type sectionInfo struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
}

type deckResponse struct {
	Sections []sectionInfo `json:"sections"`
	Timings  timingsInfo   `json:"timings"`
}

type timingsInfo struct {
	TouchDelayMS   int64 `json:"touch_delay_ms"`
	DesktopDelayMS int64 `json:"desktop_delay_ms"`
	ThrottleMS     int64 `json:"throttle_ms"`
	SwipeThreshold int   `json:"swipe_threshold"`
}

// stateResponse is what navbars, progress bars and prev/next controls render.
type stateResponse struct {
	Current  string  `json:"current"`
	Index    int     `json:"index"`
	Total    int     `json:"total"`
	Progress float64 `json:"progress"`
	IsFirst  bool    `json:"is_first"`
	IsLast   bool    `json:"is_last"`
	Pending  bool    `json:"pending"`
}

type sessionResponse struct {
	ID      string        `json:"id"`
	Profile deck.Profile  `json:"profile"`
	DelayMS int64         `json:"delay_ms"`
	State   stateResponse `json:"state"`
}

type navigateResponse struct {
	Accepted bool          `json:"accepted"`
	State    stateResponse `json:"state"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	t := s.cfg.Timings()
	resp := deckResponse{
		Timings: timingsInfo{
			TouchDelayMS:   t.TouchDelay.Milliseconds(),
			DesktopDelayMS: t.DesktopDelay.Milliseconds(),
			ThrottleMS:     t.Throttle.Milliseconds(),
			SwipeThreshold: t.SwipeThreshold,
		},
	}
	for _, id := range s.catalog.IDs() {
		info := sectionInfo{ID: string(id)}
		if sec, ok := s.cfg.Section(id); ok {
			info.Title = sec.Title
			info.Lines = sec.Lines
		}
		resp.Sections = append(resp.Sections, info)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	env := environmentFromRequest(r)
	sess, err := s.store.Create(r.Context(), func() *deck.View {
		return deck.Mount(s.catalog, deck.MountOptions{
			Environment: env,
			Timings:     s.cfg.Timings(),
			Clock:       s.clock,
			Logger:      s.logger,
		})
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:      sess.ID,
		Profile: sess.View.Profile(),
		DelayMS: sess.View.Controller.Delay().Milliseconds(),
		State:   stateOf(sess.View.Controller),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateOf(sess.View.Controller))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Section string `json:"section"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	// Unknown sections are dropped silently by the controller.
	accepted := sess.View.Controller.GoTo(deck.SectionID(req.Section))
	writeNavigate(w, sess, accepted)
}

func (s *Server) handleAdjacent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string `json:"direction"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateDirection(req.Direction); err != nil {
		writeError(w, err)
		return
	}
	dir, ok := deck.ParseDirection(req.Direction)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q", req.Direction))
		return
	}

	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	accepted := sess.View.Controller.GoToAdjacent(dir)
	writeNavigate(w, sess, accepted)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeNavigate(w, sess, sess.View.Controller.GoHome())
}

// =============================================================================
// Helpers
// =============================================================================

// session resolves the {id} URL parameter, writing an error response on failure.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	if !session.ValidID(id) {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id))
		return nil, false
	}
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

func stateOf(c *deck.Controller) stateResponse {
	idx := c.CurrentIndex()
	return stateResponse{
		Current:  string(c.Catalog().At(idx)),
		Index:    idx,
		Total:    c.Len(),
		Progress: c.Progress(),
		IsFirst:  c.IsFirst(),
		IsLast:   c.IsLast(),
		Pending:  c.Pending(),
	}
}

func writeNavigate(w http.ResponseWriter, sess *session.Session, accepted bool) {
	writeJSON(w, http.StatusOK, navigateResponse{
		Accepted: accepted,
		State:    stateOf(sess.View.Controller),
	})
}

// maxBodyBytes bounds navigation request bodies.
const maxBodyBytes = 4 << 10

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(code), errorResponse{
		Code:    code,
		Message: errors.UserMessage(err),
	})
}
