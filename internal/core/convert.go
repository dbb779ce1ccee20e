package core

// convert.go turns PostgreSQL result values into table record values and
// parses the loosely formatted scope parameters that arrive from clients.
//
// All FromPg* functions return nil for NULL or unrepresentable input so the
// table treats the cell as missing.

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/JonMunkholm/procurement/internal/table"
)

// FromPgNumeric converts a pgtype.Numeric to an exact decimal.
// NaN and infinities have no decimal form and become nil.
func FromPgNumeric(n pgtype.Numeric) any {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return nil
	}
	return decimal.NewFromBigInt(new(big.Int).Set(n.Int), n.Exp)
}

// FromPgText converts a pgtype.Text to a string, or nil when NULL.
func FromPgText(t pgtype.Text) any {
	if !t.Valid {
		return nil
	}
	return t.String
}

// FromPgDate converts a pgtype.Date to a UTC time, or nil when NULL or infinite.
func FromPgDate(d pgtype.Date) any {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return nil
	}
	return d.Time.UTC()
}

// FromPgTimestamp converts a pgtype.Timestamp to a UTC time.
func FromPgTimestamp(ts pgtype.Timestamp) any {
	if !ts.Valid || ts.InfinityModifier != pgtype.Finite {
		return nil
	}
	return ts.Time.UTC()
}

// FromPgValue converts one value from pgx.Rows.Values into a record value.
// Values pgx already decodes to Go types are passed through table.Normalize.
func FromPgValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case pgtype.Numeric:
		return table.Normalize(FromPgNumeric(val))
	case pgtype.Text:
		return FromPgText(val)
	case pgtype.Date:
		return table.Normalize(FromPgDate(val))
	case pgtype.Timestamp:
		return table.Normalize(FromPgTimestamp(val))
	default:
		return table.Normalize(val)
	}
}

// ToRecord converts a row map from pgx.RowToMap into a table record.
func ToRecord(row map[string]any) table.Record {
	rec := make(table.Record, len(row))
	for k, v := range row {
		rec[k] = FromPgValue(v)
	}
	return rec
}

// ParseYear parses a year parameter. Empty input yields 0; callers pick the
// default.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

// ParseShipIDs parses a comma-separated list of vessel ids.
// Blank and non-numeric entries are dropped; duplicates are kept once.
func ParseShipIDs(s string) []int {
	var ids []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
