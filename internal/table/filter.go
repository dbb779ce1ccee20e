package table

import "strings"

// ValueSet is a set of raw (normalized) cell values.
type ValueSet map[any]struct{}

// NewValueSet builds a set from normalized values.
func NewValueSet(values ...any) ValueSet {
	s := make(ValueSet, len(values))
	for _, v := range values {
		s[Normalize(v)] = struct{}{}
	}
	return s
}

// Has reports membership. Comparison is exact: "5" and 5 are different values.
func (s ValueSet) Has(v any) bool {
	_, ok := s[v]
	return ok
}

// HasAny reports whether any of values is a member.
func (s ValueSet) HasAny(values []any) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Selections holds the facet selection per column key. An absent key and an
// empty set both mean the column is unconstrained.
type Selections map[string]ValueSet

// Active reports whether any column has a non-empty selection.
func (s Selections) Active() bool {
	for _, set := range s {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// clone copies the selections so a Table never shares sets with its caller.
func (s Selections) clone() Selections {
	out := make(Selections, len(s))
	for k, set := range s {
		cp := make(ValueSet, len(set))
		for v := range set {
			cp[v] = struct{}{}
		}
		out[k] = cp
	}
	return out
}

// Filter returns the records that contain search (case-insensitive, in any
// column) and satisfy every non-empty column selection. The input slice is
// not modified.
func Filter(records []Record, search string, selections Selections, columns []Column) []Record {
	result := make([]Record, 0, len(records))

	needle := strings.ToLower(search)
	for _, rec := range records {
		if needle != "" && !matchesSearch(rec, needle, columns) {
			continue
		}
		if !matchesSelections(rec, selections) {
			continue
		}
		result = append(result, rec)
	}

	return result
}

// matchesSearch reports whether any column's string form contains needle.
// needle must already be lowercase.
func matchesSearch(rec Record, needle string, columns []Column) bool {
	for _, col := range columns {
		v := rec.Value(col.Key)
		if isNull(v) {
			continue
		}
		if strings.Contains(strings.ToLower(stringOf(v)), needle) {
			return true
		}
	}
	return false
}

// matchesSelections applies the AND of every non-empty column selection.
func matchesSelections(rec Record, selections Selections) bool {
	for key, set := range selections {
		if len(set) == 0 {
			continue
		}
		if !set.Has(rec.Value(key)) {
			return false
		}
	}
	return true
}
