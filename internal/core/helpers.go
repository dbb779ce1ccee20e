package core

import (
	"fmt"
	"strings"
)

// WhereBuilder accumulates AND-ed conditions with numbered placeholders.
type WhereBuilder struct {
	conditions []string
	args       []any
	argIndex   int
}

// NewWhereBuilder returns an empty builder whose first placeholder is $1.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{argIndex: 1}
}

// Add appends "column = $n". Nil and empty string values are skipped.
func (wb *WhereBuilder) Add(column string, value any) {
	if value == nil {
		return
	}
	if s, ok := value.(string); ok && s == "" {
		return
	}
	wb.addArg(column+" = $%d", value)
}

// AddRaw appends a condition that takes no arguments.
func (wb *WhereBuilder) AddRaw(condition string) {
	if condition == "" {
		return
	}
	wb.conditions = append(wb.conditions, condition)
}

// AddYear restricts a timestamp column to a calendar year. Non-positive
// years are skipped.
func (wb *WhereBuilder) AddYear(column string, year int) {
	if year <= 0 {
		return
	}
	wb.addArg("EXTRACT(YEAR FROM "+column+") = $%d", year)
}

// AddAny restricts column to one of ids. An empty list is skipped.
func (wb *WhereBuilder) AddAny(column string, ids []int) {
	if len(ids) == 0 {
		return
	}
	wb.addArg(column+" = ANY($%d)", ids)
}

// Build returns the WHERE clause (with a leading space) and its arguments.
// Both are empty when no conditions were added.
func (wb *WhereBuilder) Build() (string, []any) {
	if len(wb.conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(wb.conditions, " AND "), wb.args
}

// NextArgIndex returns the placeholder number the next argument would use.
func (wb *WhereBuilder) NextArgIndex() int {
	return wb.argIndex
}

func (wb *WhereBuilder) addArg(format string, value any) {
	wb.conditions = append(wb.conditions, fmt.Sprintf(format, wb.argIndex))
	wb.args = append(wb.args, value)
	wb.argIndex++
}

// CurrencyConversion returns a SQL expression converting amount to USD.
// Amounts already in USD, or without a usable exchange rate, pass through.
func CurrencyConversion(amount, rate, currency string) string {
	return fmt.Sprintf(
		"CASE WHEN %[3]s = 'USD' OR %[2]s IS NULL OR %[2]s = 0 THEN %[1]s ELSE ROUND(%[1]s * %[2]s, 2) END",
		amount, rate, currency,
	)
}

// quoteIdentifier quotes a SQL identifier to prevent injection.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// SelectColumn maps a SQL expression to a record key.
type SelectColumn struct {
	Expr string
	Key  string
}

// SelectList renders "expr AS "key"" pairs for a SELECT clause.
func SelectList(cols ...SelectColumn) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Expr + " AS " + quoteIdentifier(c.Key)
	}
	return strings.Join(parts, ", ")
}
