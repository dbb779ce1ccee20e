package table

import (
	"fmt"
	"strings"
)

// ColumnType is the semantic type of a column. It drives default formatting
// and whether the column carries a facet filter.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeNumber
	TypeCurrency
	TypeDate
	TypeStatus
	TypePriority
)

var columnTypeNames = map[ColumnType]string{
	TypeText:     "text",
	TypeNumber:   "number",
	TypeCurrency: "currency",
	TypeDate:     "date",
	TypeStatus:   "status",
	TypePriority: "priority",
}

// String returns the lowercase name used in JSON and catalog files.
func (t ColumnType) String() string {
	if name, ok := columnTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// ParseColumnType converts a type name ("status", "currency", ...) to a ColumnType.
func ParseColumnType(name string) (ColumnType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range columnTypeNames {
		if n == name {
			return t, nil
		}
	}
	return TypeText, fmt.Errorf("unknown column type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t ColumnType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ColumnType) UnmarshalText(b []byte) error {
	parsed, err := ParseColumnType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RenderFunc overrides the default formatter for a column. It receives the
// normalized cell value (nil when absent) and the whole record.
type RenderFunc func(value any, rec Record) string

// Column describes one column of a list view.
type Column struct {
	Key        string     // Record field name
	Label      string     // Header text
	Type       ColumnType // Semantic type
	Filterable bool       // Opt-in facet filter; implied for status and priority
	Render     RenderFunc // Optional display override
}

// IsFilterable reports whether the column gets a facet dropdown.
func (c Column) IsFilterable() bool {
	return c.Filterable || c.Type == TypeStatus || c.Type == TypePriority
}
