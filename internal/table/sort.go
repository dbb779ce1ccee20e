package table

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" or "desc" (any case).
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return Asc, fmt.Errorf("invalid sort direction %q", s)
}

// SortState is the active sort. An empty Key keeps the input order.
type SortState struct {
	Key       string    `json:"key,omitempty"`
	Direction Direction `json:"direction"`
}

// Sort returns records ordered by key. The sort is stable. Null values sort
// last in both directions; desc reverses only the comparison between two
// non-null values. With an empty key the input is returned unchanged.
func Sort(records []Record, key string, dir Direction) []Record {
	if key == "" {
		return records
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return compareValues(a.Value(key), b.Value(key), dir)
	})
	return sorted
}

// compareValues orders two normalized values with nulls last.
func compareValues(a, b any, dir Direction) int {
	aNull, bNull := isNull(a), isNull(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}

	var c int
	af, aNum := a.(float64)
	bf, bNum := b.(float64)
	if aNum && bNum {
		c = cmp.Compare(af, bf)
	} else {
		c = strings.Compare(stringOf(a), stringOf(b))
	}

	if dir == Desc {
		return -c
	}
	return c
}
