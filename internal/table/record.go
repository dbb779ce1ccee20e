package table

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one row of tabular data keyed by column key.
// Records are never modified by this package.
type Record map[string]any

// Value returns the normalized value for key, or nil when the key is absent.
func (r Record) Value(key string) any {
	if r == nil {
		return nil
	}
	return Normalize(r[key])
}

// RowKey returns the identity used for row rendering: the "id" field when
// present, otherwise the positional index.
func RowKey(rec Record, index int) string {
	if id := rec.Value("id"); id != nil {
		return stringOf(id)
	}
	return strconv.Itoa(index)
}

// Normalize maps a raw value to the small set of kinds the engine compares:
// nil, string, float64, bool and time.Time (UTC). Every integer and float
// kind becomes float64 so that 5 and 5.0 are the same facet value, while
// "5" stays a string. Anything else is reduced to its fmt form, which keeps
// all normalized values comparable with ==.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return val
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int8:
		return float64(val)
	case int16:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint8:
		return float64(val)
	case uint16:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case decimal.Decimal:
		return val.InexactFloat64()
	case time.Time:
		if val.IsZero() {
			return nil
		}
		return val.UTC()
	case *string:
		if val == nil {
			return nil
		}
		return *val
	case *float64:
		if val == nil {
			return nil
		}
		return *val
	case *int64:
		if val == nil {
			return nil
		}
		return float64(*val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return Normalize(*val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// NormalizeRecords returns copies of records with every value normalized.
// A nil slice yields an empty, non-nil slice.
func NormalizeRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		norm := make(Record, len(rec))
		for k, v := range rec {
			norm[k] = Normalize(v)
		}
		out[i] = norm
	}
	return out
}

// stringOf is the string coercion used for search, facets and sorting.
// Times use RFC 3339 in UTC so their string order is chronological.
func stringOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

// isNull reports whether a normalized value counts as absent.
func isNull(v any) bool {
	return v == nil
}
