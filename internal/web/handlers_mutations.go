package web

// handlers_mutations.go holds the session action endpoints. Each applies one
// table operation and responds with the new snapshot.

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/procurement/internal/core"
	"github.com/JonMunkholm/procurement/internal/table"
)

// mutation runs a service call for the session in the URL.
type mutation func(ctx context.Context, id string) (core.SessionView, error)

// mutate runs m and writes the result.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, m mutation) {
	v, err := m(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respondView(w, r, v, http.StatusOK)
}

func (s *Server) handleScope(w http.ResponseWriter, r *http.Request) {
	scope, err := s.parseScope(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.Rescope(ctx, id, scope)
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("q")
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.Search(ctx, id, term)
	})
}

func (s *Server) handleToggleFilter(w http.ResponseWriter, r *http.Request) {
	column, value := chi.URLParam(r, "column"), r.FormValue("value")
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.ToggleFilter(ctx, id, column, value)
	})
}

func (s *Server) handleSelectAll(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.SelectAll(ctx, id, column)
	})
}

func (s *Server) handleClearFilter(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.ClearFilter(ctx, id, column)
	})
}

// handleSort toggles the column's sort, or sets it when dir is given.
func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	raw := r.FormValue("dir")
	if raw == "" {
		s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
			return s.service.ToggleSort(ctx, id, column)
		})
		return
	}

	dir, err := table.ParseDirection(raw)
	if err != nil {
		s.fail(w, r, badRequest{err})
		return
	}
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.SetSort(ctx, id, column, dir)
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := parseIntParam(r, "page", "page")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.SetPage(ctx, id, page)
	})
}

func (s *Server) handlePageSize(w http.ResponseWriter, r *http.Request) {
	size, err := parseIntParam(r, "size", "page size")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.SetPageSize(ctx, id, size)
	})
}

func (s *Server) handleToggleFacet(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	s.mutate(w, r, func(ctx context.Context, id string) (core.SessionView, error) {
		return s.service.ToggleFacet(ctx, id, column)
	})
}

func (s *Server) handleCloseFacet(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, s.service.CloseFacet)
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, s.service.ClearAll)
}
