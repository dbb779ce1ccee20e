// Package core provides the business logic for procurement list views.
//
// This package sits between the HTTP layer and the reporting database. It
// knows which list views exist, how to load their rows, and keeps one
// interactive table per mounted view. It can be used by web handlers, CLI
// tools, or tests without modification.
//
// # Architecture
//
//   - View Definitions: Registered via the registry, each view has columns,
//     a SELECT list, joins and scope conditions.
//   - Source: Loads rows for a view and scope. [PGSource] reads PostgreSQL.
//   - Sessions: A [table.Table] per mounted view, kept in a [SessionStore]
//     and expired after an idle TTL.
//   - Service: The main entry point for all operations.
//
// # View Registry
//
// Views are registered at init time using [Register]:
//
//	core.Register(core.ViewDefinition{
//	    Info:    core.ViewInfo{Key: "rfqs", Group: "RFQ", Label: "Requests for Quotation"},
//	    Columns: []table.Column{{Key: "rfq_number", Label: "RFQ #"}},
//	    Select:  core.SelectList(core.SelectColumn{Expr: "r.rfq_number", Key: "rfq_number"}),
//	    From:    "FROM rpt_rfq_status r",
//	    Where:   scopeWhere("r.created_on", "r.ship_id"),
//	})
//
// A YAML [Catalog] can override labels, page sizes and filterable columns
// per deployment.
//
// # Loading
//
// Client-side views load every matching row (up to the row limit) once per
// scope and page in memory. Server-side views load one page at a time: the
// table's page sink records the request and the service fetches it with
// LIMIT/OFFSET before the call returns. Loads are bounded by a
// [FetchLimiter] and a per-fetch timeout.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - DB001-DB007: Database errors (missing relations, connections, timeouts)
//   - VIEW001-VIEW002: View and catalog errors
//   - SESS001-SESS003: Session and capacity errors
//   - REQ001-REQ005: Request parameter and lifecycle errors
package core
