package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/JonMunkholm/procurement/internal/logging"
)

// Rescope changes a session's year and vessel scope and reloads its rows.
// Facet values seen under the old scope stay available.
func (s *Service) Rescope(ctx context.Context, id string, scope Scope) (SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	scope.ShipIDs = slices.Clone(scope.ShipIDs)
	sess.scope = scope
	if err := s.load(ctx, sess); err != nil {
		return SessionView{}, err
	}
	return s.snapshot(sess), nil
}

// load fetches the session's rows for its scope. Server-side sessions load
// the current page only. Caller holds sess.mu.
func (s *Service) load(ctx context.Context, sess *Session) error {
	t := sess.table
	q := Query{Scope: sess.scope}
	if t.ServerSide() {
		q.Limit = t.PageSize()
		q.Offset = (t.Page() - 1) * t.PageSize()
	}

	page, err := s.fetch(ctx, sess, q)
	if err != nil {
		return err
	}
	if t.ServerSide() {
		t.SetTotalRecords(page.Total)
	}
	t.SetData(page.Records)

	return s.refetchPending(ctx, sess)
}

// refetchPending serves page requests the table raised while handling a
// mutation. Loading a page can move the total, which can request another
// page, so this loops a bounded number of times. Caller holds sess.mu.
func (s *Service) refetchPending(ctx context.Context, sess *Session) error {
	t := sess.table
	for range maxRefetches {
		req, ok := sess.takePending()
		if !ok {
			return nil
		}

		page, err := s.fetch(ctx, sess, Query{
			Scope:  sess.scope,
			Limit:  req.pageSize,
			Offset: (req.page - 1) * req.pageSize,
		})
		if err != nil {
			// Keep the request so the next call retries it.
			sess.requestPage(req.page, req.pageSize)
			return err
		}
		t.SetTotalRecords(page.Total)
		t.SetData(page.Records)
	}

	if req, ok := sess.takePending(); ok {
		logging.WithFields(ctx, "session_id", sess.ID).Warn("page request dropped after refetch limit",
			"page", req.page,
			"page_size", req.pageSize,
		)
	}
	return nil
}

// fetch runs one source load under the fetch limiter and timeout.
func (s *Service) fetch(ctx context.Context, sess *Session, q Query) (Page, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return Page{}, err
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	logger := logging.WithFields(ctx, "session_id", sess.ID, "view", sess.View.Info.Key)
	start := time.Now()

	page, err := s.source.Load(ctx, sess.View, q)
	if err != nil {
		logger.Error("fetch failed", "error", err)
		return Page{}, fmt.Errorf("fetch %s: %w", sess.View.Info.Key, err)
	}

	logger.Debug("fetch completed",
		"rows", len(page.Records),
		"total", page.Total,
		"offset", q.Offset,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return page, nil
}
