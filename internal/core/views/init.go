// Package views registers all procurement list views with the core registry.
// Import this package to ensure all views are registered.
package views

import "github.com/JonMunkholm/procurement/internal/core"

func init() {
	registerRequisitions()
	registerCriticalRequisitions()
	registerRFQs()
	registerPurchaseOrders()
}

// scopeWhere restricts a view to the scope's year on dateCol and vessels on
// shipCol, after any fixed conditions.
func scopeWhere(dateCol, shipCol string, fixed ...string) core.ScopeFunc {
	return func(wb *core.WhereBuilder, scope core.Scope) {
		for _, cond := range fixed {
			wb.AddRaw(cond)
		}
		wb.AddYear(dateCol, scope.Year)
		wb.AddAny(shipCol, scope.ShipIDs)
	}
}

// lookupJoin joins lookup_value under alias on the given foreign key column.
func lookupJoin(alias, column string) string {
	return " LEFT JOIN lookup_value " + alias + " ON " + column + " = " + alias + ".lookup_item_id"
}
