package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthResponse reports process state for load balancers and operators.
type HealthResponse struct {
	Status   string `json:"status"`
	Views    int    `json:"views"`
	Sessions int    `json:"sessions"`
	Fetches  any    `json:"fetches"`
}

// handleHealth reports liveness plus session and fetch counts.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Views:    len(s.service.ListViews()),
		Sessions: s.service.SessionCount(),
		Fetches:  s.service.FetchStatus(),
	})
}

// handleListViews returns all registered views.
func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.ListViews())
}

// handleVessels returns the ships available for the vessel scope filter.
func (s *Server) handleVessels(w http.ResponseWriter, r *http.Request) {
	vessels, err := s.service.Vessels(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vessels)
}

// handleCreateSession mounts a view for the requested scope.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	scope, err := s.parseScope(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	v, err := s.service.CreateSession(r.Context(), chi.URLParam(r, "viewKey"), scope)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respondView(w, r, v, http.StatusCreated)
}

// handleGetSession returns a session's current snapshot.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	v, err := s.service.Session(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respondView(w, r, v, http.StatusOK)
}

// handleDeleteSession drops a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteSession(chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
