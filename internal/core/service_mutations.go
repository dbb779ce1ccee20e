package core

import (
	"context"

	"github.com/JonMunkholm/procurement/internal/table"
)

// Update applies fn to a session's table under the session lock, serves any
// server-side page request it raised and returns the new snapshot.
func (s *Service) Update(ctx context.Context, id string, fn func(t *table.Table)) (SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	fn(sess.table)
	if err := s.refetchPending(ctx, sess); err != nil {
		return SessionView{}, err
	}
	return s.snapshot(sess), nil
}

// Search sets the free-text search term.
func (s *Service) Search(ctx context.Context, id, term string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.Search(term) })
}

// ToggleFilter toggles one facet value of a column.
func (s *Service) ToggleFilter(ctx context.Context, id, column, value string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.ToggleFilter(column, value) })
}

// SelectAll selects every known facet value of a column.
func (s *Service) SelectAll(ctx context.Context, id, column string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.SelectAll(column) })
}

// ClearFilter removes a column's facet selection.
func (s *Service) ClearFilter(ctx context.Context, id, column string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.ClearFilter(column) })
}

// ToggleSort cycles a column's sort direction.
func (s *Service) ToggleSort(ctx context.Context, id, column string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.ToggleSort(column) })
}

// SetSort sorts by column in an explicit direction.
func (s *Service) SetSort(ctx context.Context, id, column string, dir table.Direction) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.SetSort(column, dir) })
}

// SetPage moves to a page, clamped to the available range.
func (s *Service) SetPage(ctx context.Context, id string, page int) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.SetPage(page) })
}

// SetPageSize changes the page size and returns to the first page.
func (s *Service) SetPageSize(ctx context.Context, id string, size int) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.SetPageSize(size) })
}

// ToggleFacet opens a column's facet dropdown, or closes it if open.
func (s *Service) ToggleFacet(ctx context.Context, id, column string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.ToggleFacet(column) })
}

// CloseFacet closes any open facet dropdown.
func (s *Service) CloseFacet(ctx context.Context, id string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.CloseFacet() })
}

// ClearAll resets search, facet selections and sort.
func (s *Service) ClearAll(ctx context.Context, id string) (SessionView, error) {
	return s.Update(ctx, id, func(t *table.Table) { t.ClearAll() })
}
