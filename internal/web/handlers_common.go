package web

// handlers_common.go contains shared request parsing and response helpers.

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/procurement/internal/core"
	"github.com/JonMunkholm/procurement/internal/web/templates"
)

// parseScope reads the year and shipIds query parameters. A missing year
// means the current year.
func (s *Server) parseScope(r *http.Request) (core.Scope, error) {
	q := r.URL.Query()
	year, err := core.ParseYear(q.Get("year"))
	if err != nil {
		return core.Scope{}, badRequest{err}
	}
	if year == 0 {
		year = s.now().Year()
	}
	return core.Scope{Year: year, ShipIDs: core.ParseShipIDs(q.Get("shipIds"))}, nil
}

// parseIntParam parses a required integer query or form parameter.
func parseIntParam(r *http.Request, name, what string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest{fmt.Errorf("invalid %s %q", what, raw)}
	}
	return n, nil
}

// respondView writes a session snapshot: an HTML fragment for HTMX requests,
// JSON otherwise.
func (s *Server) respondView(w http.ResponseWriter, r *http.Request, v core.SessionView, status int) {
	if !isHTMX(r) {
		writeJSON(w, status, v)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	data := templates.TableData{SessionID: v.ID, Label: v.Label, View: v.View}
	if err := templates.Table(data).Render(r.Context(), w); err != nil {
		slog.Error("render table", "session_id", v.ID, "error", err)
	}
}
