package core

import (
	"context"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JonMunkholm/procurement/internal/table"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// ViewInfo contains display information about a list view.
type ViewInfo struct {
	Key               string       `json:"key"`   // Unique identifier: "requisitions"
	Group             string       `json:"group"` // Procurement stage: "Requisitions", "RFQ", "Purchasing"
	Label             string       `json:"label"` // Display name: "All Requisitions"
	SearchPlaceholder string       `json:"searchPlaceholder"`
	ServerSide        bool         `json:"serverSide"`
	DefaultPageSize   int          `json:"defaultPageSize"`
	Columns           []ColumnInfo `json:"columns"`
}

// ColumnInfo is the serializable part of a table.Column.
type ColumnInfo struct {
	Key        string           `json:"key"`
	Label      string           `json:"label"`
	Type       table.ColumnType `json:"type"`
	Filterable bool             `json:"filterable"`
}

// ScopeFunc adds the view's fixed and scope conditions to a WHERE clause.
type ScopeFunc func(wb *WhereBuilder, scope Scope)

// ViewDefinition contains everything needed to load and present a view.
type ViewDefinition struct {
	Info    ViewInfo
	Columns []table.Column

	// Select is the column list, aliased to the column keys.
	Select string

	// From is the FROM clause including joins.
	From string

	// Where adds conditions for the requested scope.
	Where ScopeFunc

	// OrderBy is the default row order applied by the database.
	OrderBy string
}

// columnInfos derives the serializable column list.
func (d ViewDefinition) columnInfos() []ColumnInfo {
	infos := make([]ColumnInfo, len(d.Columns))
	for i, c := range d.Columns {
		infos[i] = ColumnInfo{Key: c.Key, Label: c.Label, Type: c.Type, Filterable: c.IsFilterable()}
	}
	return infos
}

// clone returns a copy safe to modify without touching the registry.
func (d ViewDefinition) clone() ViewDefinition {
	d.Columns = slices.Clone(d.Columns)
	d.Info.Columns = slices.Clone(d.Info.Columns)
	return d
}

// Scope narrows a view to a year and a set of vessels.
// A zero Year or empty ShipIDs means no restriction.
type Scope struct {
	Year    int   `json:"year,omitempty"`
	ShipIDs []int `json:"shipIds,omitempty"`
}

// Query is a Scope plus the row window to load.
// A zero Limit loads up to the source's row limit.
type Query struct {
	Scope
	Limit  int
	Offset int
}

// Page is the result of a load: the rows and the total matching count.
type Page struct {
	Records []table.Record
	Total   int
}

// Vessel is a ship with procurement activity.
type Vessel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
