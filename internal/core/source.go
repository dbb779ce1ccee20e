package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/procurement/internal/table"
)

// DefaultRowLimit caps rows loaded for a client-side view.
const DefaultRowLimit = 10000

// Source loads view rows and the vessel list.
type Source interface {
	Load(ctx context.Context, def ViewDefinition, q Query) (Page, error)
	Vessels(ctx context.Context) ([]Vessel, error)
}

// PGSource loads views from PostgreSQL.
type PGSource struct {
	db       DBTX
	rowLimit int
}

// NewPGSource creates a source over db. The pool must be safe for
// concurrent use since count and page queries run in parallel.
func NewPGSource(db DBTX, rowLimit int) *PGSource {
	if rowLimit <= 0 {
		rowLimit = DefaultRowLimit
	}
	return &PGSource{db: db, rowLimit: rowLimit}
}

// Load runs the view's query for q.
//
// Client-side views load up to the row limit and report the row count as
// the total. Server-side views load one window and count matches in a
// parallel query.
func (s *PGSource) Load(ctx context.Context, def ViewDefinition, q Query) (Page, error) {
	rowsSQL, countSQL, args := buildViewQueries(def, q, s.rowLimit)

	if !def.Info.ServerSide {
		records, err := s.queryRecords(ctx, rowsSQL, args)
		if err != nil {
			return Page{}, fmt.Errorf("load %s: %w", def.Info.Key, err)
		}
		return Page{Records: records, Total: len(records)}, nil
	}

	var (
		records []table.Record
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.queryRecords(gctx, rowsSQL, args)
		return err
	})
	g.Go(func() error {
		countArgs := args[:len(args)-2]
		return s.db.QueryRow(gctx, countSQL, countArgs...).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return Page{}, fmt.Errorf("load %s: %w", def.Info.Key, err)
	}

	return Page{Records: records, Total: int(total)}, nil
}

// Vessels lists ships that appear on at least one purchase order.
func (s *PGSource) Vessels(ctx context.Context) ([]Vessel, error) {
	rows, err := s.db.Query(ctx, vesselsSQL)
	if err != nil {
		return nil, fmt.Errorf("query vessels: %w", err)
	}

	vessels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Vessel, error) {
		var v Vessel
		err := row.Scan(&v.ID, &v.Name, &v.Code)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("read vessels: %w", err)
	}
	return vessels, nil
}

func (s *PGSource) queryRecords(ctx context.Context, sql string, args []any) ([]table.Record, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("read row values: %w", err)
	}

	records := make([]table.Record, len(maps))
	for i, m := range maps {
		records[i] = ToRecord(m)
	}
	return records, nil
}

const vesselsSQL = `SELECT s.ship_id, COALESCE(s.name, ''), COALESCE(s.code, '')
FROM ship s
WHERE s.ship_id IN (SELECT DISTINCT ship_id FROM rpt_po_status WHERE ship_id IS NOT NULL)
ORDER BY s.name`

// buildViewQueries renders the row and count statements for a view.
// The row statement's last two arguments are LIMIT and OFFSET; the count
// statement uses the arguments before them.
func buildViewQueries(def ViewDefinition, q Query, rowLimit int) (rowsSQL, countSQL string, args []any) {
	wb := NewWhereBuilder()
	if def.Where != nil {
		def.Where(wb, q.Scope)
	}
	whereClause, whereArgs := wb.Build()

	limit := q.Limit
	if limit <= 0 || limit > rowLimit {
		limit = rowLimit
	}
	offset := max(q.Offset, 0)

	orderBy := ""
	if def.OrderBy != "" {
		orderBy = " ORDER BY " + def.OrderBy
	}

	argIndex := wb.NextArgIndex()
	rowsSQL = fmt.Sprintf("SELECT %s %s%s%s LIMIT $%d OFFSET $%d",
		def.Select, def.From, whereClause, orderBy, argIndex, argIndex+1)
	countSQL = fmt.Sprintf("SELECT COUNT(*) %s%s", def.From, whereClause)

	args = append(append([]any{}, whereArgs...), limit, offset)
	return rowsSQL, countSQL, args
}
