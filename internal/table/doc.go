// Package table provides the in-memory filter, sort and pagination engine
// behind every procurement list view.
//
// The package has no I/O and no goroutines. A [Table] owns the view state
// for one mounted list (search term, facet selections, sort, page and page
// size) and re-derives the visible page from scratch on every mutation:
//
//	records -> Filter -> Sort -> Paginator -> View
//
// # Facets
//
// A [FacetRegistry] remembers every distinct value it has ever seen for each
// filterable column. Values are only ever added, so narrowing the visible
// rows never shrinks a column's option list:
//
//	t := table.New(columns, table.Config{InitialPageSize: 50})
//	t.SetData(records2024)
//	t.SetData(records2025) // 2024 statuses stay selectable
//
// # Server-side paging
//
// With [Config.ServerSide] set, the table never slices. Page and page size
// changes are forwarded to [Config.OnPageChange] and [Config.OnPageSizeChange],
// and the caller supplies one page of records plus [Table.SetTotalRecords].
//
// A Table is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
package table
