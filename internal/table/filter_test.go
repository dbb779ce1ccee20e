package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var filterColumns = []Column{
	{Key: "id", Label: "ID", Type: TypeNumber},
	{Key: "code", Label: "Code", Type: TypeText},
	{Key: "status", Label: "Status", Type: TypeStatus},
}

var filterRecords = []Record{
	{"id": 1, "code": "ABC-001", "status": "CREATED"},
	{"id": 2, "code": "abc-002", "status": "ISSUED"},
	{"id": 3, "code": "ABC-003", "status": "CANCELLED"},
	{"id": 4, "code": "XYZ-004", "status": "CREATED"},
	{"id": 5, "code": nil, "status": "ISSUED"},
}

func ids(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Value("id").(float64)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		search     string
		selections Selections
		want       []float64
	}{
		{
			name: "no constraints",
			want: []float64{1, 2, 3, 4, 5},
		},
		{
			name:   "search is case-insensitive",
			search: "ABC",
			want:   []float64{1, 2, 3},
		},
		{
			name:   "search matches any column",
			search: "issued",
			want:   []float64{2, 5},
		},
		{
			name:   "search matches numbers by string form",
			search: "4",
			want:   []float64{4},
		},
		{
			name:       "selection",
			selections: Selections{"status": NewValueSet("CREATED", "ISSUED")},
			want:       []float64{1, 2, 4, 5},
		},
		{
			name:       "search and selection intersect",
			search:     "ABC",
			selections: Selections{"status": NewValueSet("CREATED", "ISSUED")},
			want:       []float64{1, 2},
		},
		{
			name:       "empty selection is unconstrained",
			search:     "ABC",
			selections: Selections{"status": NewValueSet()},
			want:       []float64{1, 2, 3},
		},
		{
			name: "selections across columns AND together",
			selections: Selections{
				"status": NewValueSet("CREATED"),
				"code":   NewValueSet("XYZ-004", "ABC-003"),
			},
			want: []float64{4},
		},
		{
			name:   "no match",
			search: "nothing",
			want:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(filterRecords, tt.search, tt.selections, filterColumns))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_ClearingSelectionMatchesSearchOnly(t *testing.T) {
	searchOnly := Filter(filterRecords, "ABC", nil, filterColumns)
	cleared := Filter(filterRecords, "ABC", Selections{"status": {}}, filterColumns)

	if diff := cmp.Diff(ids(searchOnly), ids(cleared)); diff != "" {
		t.Errorf("cleared selection differs from search-only (-want +got):\n%s", diff)
	}
}

func TestFilter_ExactMembership(t *testing.T) {
	records := []Record{
		{"id": 1, "qty": 5},
		{"id": 2, "qty": "5"},
	}

	got := ids(Filter(records, "", Selections{"qty": NewValueSet(5)}, nil))
	if diff := cmp.Diff([]float64{1}, got); diff != "" {
		t.Errorf("numeric selection mismatch (-want +got):\n%s", diff)
	}

	got = ids(Filter(records, "", Selections{"qty": NewValueSet("5")}, nil))
	if diff := cmp.Diff([]float64{2}, got); diff != "" {
		t.Errorf("string selection mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_NilRecords(t *testing.T) {
	got := Filter(nil, "x", nil, filterColumns)
	if got == nil || len(got) != 0 {
		t.Errorf("Filter(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	in := []Record{{"id": 1, "status": "A"}, {"id": 2, "status": "B"}}
	Filter(in, "", Selections{"status": NewValueSet("B")}, filterColumns)

	if len(in) != 2 || in[0]["status"] != "A" {
		t.Errorf("input modified: %v", in)
	}
}
