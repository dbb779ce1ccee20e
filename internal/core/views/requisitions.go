package views

import (
	"github.com/JonMunkholm/procurement/internal/core"
	"github.com/JonMunkholm/procurement/internal/table"
)

var requisitionColumns = []table.Column{
	{Key: "req_number", Label: "Req #", Type: table.TypeText},
	{Key: "ship_name", Label: "Vessel", Type: table.TypeText, Filterable: true},
	{Key: "status", Label: "Status", Type: table.TypeStatus},
	{Key: "priority", Label: "Priority", Type: table.TypePriority},
	{Key: "critical_count", Label: "Critical", Type: table.TypeNumber},
	{Key: "item_count", Label: "Items", Type: table.TypeNumber},
	{Key: "date_created", Label: "Created", Type: table.TypeDate},
	{Key: "date_needed", Label: "Needed", Type: table.TypeDate},
}

var requisitionSelect = core.SelectList(
	core.SelectColumn{Expr: "r.req_number", Key: "req_number"},
	core.SelectColumn{Expr: "s.name", Key: "ship_name"},
	core.SelectColumn{Expr: "COALESCE(lv.description, 'UNKNOWN')", Key: "status"},
	core.SelectColumn{Expr: "COALESCE(lv2.description, 'D')", Key: "priority"},
	core.SelectColumn{Expr: "COALESCE(r.critical_cnt, 0)", Key: "critical_count"},
	core.SelectColumn{Expr: "COALESCE(r.item_cnt, 0)", Key: "item_count"},
	core.SelectColumn{Expr: "r.created_on", Key: "date_created"},
	core.SelectColumn{Expr: "r.date_needed", Key: "date_needed"},
)

const requisitionFrom = "FROM rpt_req_status r LEFT JOIN ship s ON r.ship_id = s.ship_id"

func registerRequisitions() {
	core.Register(core.ViewDefinition{
		Info: core.ViewInfo{
			Key:               "requisitions",
			Group:             "Requisitions",
			Label:             "All Requisitions",
			SearchPlaceholder: "Search requisitions...",
			DefaultPageSize:   50,
		},
		Columns: requisitionColumns,
		Select:  requisitionSelect,
		From: requisitionFrom +
			lookupJoin("lv", "r.last_status_lookupitem") +
			lookupJoin("lv2", "r.priority_lookupitem"),
		Where:   scopeWhere("r.created_on", "r.ship_id"),
		OrderBy: "r.created_on DESC",
	})
}

func registerCriticalRequisitions() {
	core.Register(core.ViewDefinition{
		Info: core.ViewInfo{
			Key:               "critical_requisitions",
			Group:             "Requisitions",
			Label:             "Critical Requisitions",
			SearchPlaceholder: "Search critical requisitions...",
			DefaultPageSize:   25,
		},
		Columns: requisitionColumns,
		Select:  requisitionSelect,
		From: requisitionFrom +
			lookupJoin("lv", "r.last_status_lookupitem") +
			lookupJoin("lv2", "r.priority_lookupitem"),
		Where:   scopeWhere("r.created_on", "r.ship_id", "r.critical_cnt > 0"),
		OrderBy: "r.critical_cnt DESC, r.created_on DESC",
	})
}
