package views

import (
	"github.com/JonMunkholm/procurement/internal/core"
	"github.com/JonMunkholm/procurement/internal/table"
)

// currencyJoins brings in the revision exchange rate and currency code.
const currencyJoins = " LEFT JOIN po_revision pr ON rps.current_revision_id = pr.document_revision_id" +
	" LEFT JOIN currency c ON pr.currency_id = c.currency_id"

func registerPurchaseOrders() {
	core.Register(core.ViewDefinition{
		Info: core.ViewInfo{
			Key:               "purchase_orders",
			Group:             "Purchasing",
			Label:             "Purchase Orders",
			SearchPlaceholder: "Search purchase orders...",
			DefaultPageSize:   50,
		},
		Columns: []table.Column{
			{Key: "po_code", Label: "PO #", Type: table.TypeText},
			{Key: "title", Label: "Title", Type: table.TypeText},
			{Key: "ship_name", Label: "Vessel", Type: table.TypeText, Filterable: true},
			{Key: "status", Label: "Status", Type: table.TypeStatus},
			{Key: "amount_usd", Label: "Amount (USD)", Type: table.TypeCurrency},
			{Key: "date_created", Label: "Created", Type: table.TypeDate},
		},
		Select: core.SelectList(
			core.SelectColumn{Expr: "rps.po_number", Key: "po_code"},
			core.SelectColumn{Expr: "rps.title", Key: "title"},
			core.SelectColumn{Expr: "s.name", Key: "ship_name"},
			core.SelectColumn{Expr: "COALESCE(lv.description, 'UNKNOWN')", Key: "status"},
			core.SelectColumn{Expr: core.CurrencyConversion("rps.total_cost", "pr.exchange_rate", "c.abbreviation"), Key: "amount_usd"},
			core.SelectColumn{Expr: "rps.created_on", Key: "date_created"},
		),
		From: "FROM rpt_po_status rps" + currencyJoins +
			" LEFT JOIN ship s ON rps.ship_id = s.ship_id" +
			lookupJoin("lv", "rps.last_status_lookupitem"),
		Where:   scopeWhere("rps.created_on", "rps.ship_id", "rps.doc_cancelled = 0"),
		OrderBy: "rps.created_on DESC, rps.po_number",
	})
}
