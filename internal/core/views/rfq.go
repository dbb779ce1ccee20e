package views

import (
	"github.com/JonMunkholm/procurement/internal/core"
	"github.com/JonMunkholm/procurement/internal/table"
)

func registerRFQs() {
	core.Register(core.ViewDefinition{
		Info: core.ViewInfo{
			Key:               "rfqs",
			Group:             "RFQ",
			Label:             "Requests for Quotation",
			SearchPlaceholder: "Search RFQs...",
			DefaultPageSize:   50,
		},
		Columns: []table.Column{
			{Key: "rfq_number", Label: "RFQ #", Type: table.TypeText},
			{Key: "title", Label: "Title", Type: table.TypeText},
			{Key: "ship_name", Label: "Vessel", Type: table.TypeText, Filterable: true},
			{Key: "status", Label: "Status", Type: table.TypeStatus},
			{Key: "priority", Label: "Priority", Type: table.TypePriority},
			{Key: "vendor_count", Label: "Vendors", Type: table.TypeNumber},
			{Key: "days_to_evaluate", Label: "Days to Evaluate", Type: table.TypeNumber},
			{Key: "date_created", Label: "Created", Type: table.TypeDate},
			{Key: "date_issued", Label: "Issued", Type: table.TypeDate},
			{Key: "date_approved", Label: "Approved", Type: table.TypeDate},
		},
		Select: core.SelectList(
			core.SelectColumn{Expr: "r.rfq_number", Key: "rfq_number"},
			core.SelectColumn{Expr: "r.title", Key: "title"},
			core.SelectColumn{Expr: "s.name", Key: "ship_name"},
			core.SelectColumn{Expr: "COALESCE(lv.description, 'UNKNOWN')", Key: "status"},
			core.SelectColumn{Expr: "COALESCE(lv2.description, 'D')", Key: "priority"},
			core.SelectColumn{Expr: "COALESCE(r.vendor_cnt, 0)", Key: "vendor_count"},
			core.SelectColumn{Expr: "COALESCE(r.days_issued_to_evaluated, 0)", Key: "days_to_evaluate"},
			core.SelectColumn{Expr: "r.created_on", Key: "date_created"},
			core.SelectColumn{Expr: "r.issued_on", Key: "date_issued"},
			core.SelectColumn{Expr: "r.approved_on", Key: "date_approved"},
		),
		From: "FROM rpt_rfq_status r LEFT JOIN ship s ON r.ship_id = s.ship_id" +
			lookupJoin("lv", "r.last_status_lookupitem") +
			lookupJoin("lv2", "r.priority_lookupitem"),
		Where:   scopeWhere("r.created_on", "r.ship_id"),
		OrderBy: "r.created_on DESC",
	})
}
