package table

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	missingLabel = "N/A"
	emptyText    = "-"
	dateLayout   = "1/2/2006"
)

// displayLocale is the locale used for digit grouping.
var displayLocale = language.AmericanEnglish

// formatters is the default display formatter for each column type.
var formatters = map[ColumnType]func(v any) string{
	TypeText:     formatText,
	TypeNumber:   formatNumber,
	TypeCurrency: formatCurrency,
	TypeDate:     formatDate,
	TypeStatus:   formatBadge,
	TypePriority: formatBadge,
}

// FormatCell returns the display string for one cell: the column's Render
// hook when set, otherwise the formatter for its type.
func FormatCell(col Column, rec Record) string {
	v := rec.Value(col.Key)
	if col.Render != nil {
		return col.Render(v, rec)
	}
	if f, ok := formatters[col.Type]; ok {
		return f(v)
	}
	return formatText(v)
}

func formatText(v any) string {
	s := stringOf(v)
	if s == "" {
		return emptyText
	}
	return s
}

// formatBadge is the label shown in a status or priority badge.
func formatBadge(v any) string {
	s := stringOf(v)
	if s == "" {
		return missingLabel
	}
	return s
}

func formatNumber(v any) string {
	switch val := v.(type) {
	case nil:
		return "0"
	case float64:
		p := message.NewPrinter(displayLocale)
		return p.Sprint(number.Decimal(val, number.MaxFractionDigits(3)))
	default:
		return formatText(v)
	}
}

// formatCurrency renders a USD amount with grouping and exactly two decimals.
// Rounding is half away from zero on the decimal value, not the binary float.
func formatCurrency(v any) string {
	amount := decimal.Zero
	switch val := v.(type) {
	case float64:
		amount = decimal.NewFromFloat(val)
	case string:
		if d, err := decimal.NewFromString(val); err == nil {
			amount = d
		}
	}

	rounded := amount.Round(2).InexactFloat64()
	p := message.NewPrinter(displayLocale)
	return "$" + p.Sprint(number.Decimal(rounded, number.Scale(2)))
}

// dateInputLayouts are tried in order when a date arrives as a string.
var dateInputLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatDate(v any) string {
	switch val := v.(type) {
	case nil:
		return missingLabel
	case time.Time:
		return val.Format(dateLayout)
	case string:
		if val == "" {
			return missingLabel
		}
		for _, layout := range dateInputLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t.Format(dateLayout)
			}
		}
		return val
	default:
		return formatText(v)
	}
}
