package table

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var facetColumns = []Column{
	{Key: "id", Label: "ID", Type: TypeNumber},
	{Key: "status", Label: "Status", Type: TypeStatus},
	{Key: "priority", Label: "Priority", Type: TypePriority},
	{Key: "ship", Label: "Ship", Type: TypeText, Filterable: true},
	{Key: "title", Label: "Title", Type: TypeText},
}

func TestColumn_IsFilterable(t *testing.T) {
	tests := []struct {
		col  Column
		want bool
	}{
		{Column{Type: TypeStatus}, true},
		{Column{Type: TypePriority}, true},
		{Column{Type: TypeText}, false},
		{Column{Type: TypeText, Filterable: true}, true},
		{Column{Type: TypeCurrency}, false},
	}

	for _, tt := range tests {
		if got := tt.col.IsFilterable(); got != tt.want {
			t.Errorf("IsFilterable(%s, filterable=%v) = %v, want %v", tt.col.Type, tt.col.Filterable, got, tt.want)
		}
	}
}

func TestFacetRegistry_Observe(t *testing.T) {
	reg := NewFacetRegistry()
	reg.Observe([]Record{
		{"id": 1, "status": "ISSUED", "priority": "B", "ship": "Aurora", "title": "Valves"},
		{"id": 2, "status": "CREATED", "priority": nil, "ship": "Borealis"},
		{"id": 3, "status": "ISSUED", "priority": "A", "ship": ""},
	}, facetColumns)

	if diff := cmp.Diff([]string{"CREATED", "ISSUED"}, reg.Values("status")); diff != "" {
		t.Errorf("status values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B"}, reg.Values("priority")); diff != "" {
		t.Errorf("priority values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Aurora", "Borealis"}, reg.Values("ship")); diff != "" {
		t.Errorf("ship values mismatch (-want +got):\n%s", diff)
	}
	if reg.Has("title") {
		t.Error("non-filterable column should not have a facet")
	}
	if reg.Has("id") {
		t.Error("number column without Filterable should not have a facet")
	}
}

func TestFacetRegistry_CaseSensitiveOrder(t *testing.T) {
	reg := NewFacetRegistry()
	reg.Observe([]Record{{"ship": "bravo"}, {"ship": "Alpha"}, {"ship": "Charlie"}}, facetColumns)

	want := []string{"Alpha", "Charlie", "bravo"}
	if diff := cmp.Diff(want, reg.Values("ship")); diff != "" {
		t.Errorf("ship values mismatch (-want +got):\n%s", diff)
	}
}

func TestFacetRegistry_Monotonic(t *testing.T) {
	datasets := [][]Record{
		{{"status": "CREATED"}, {"status": "ISSUED"}},
		{{"status": "APPROVED"}},
		{},
		{{"status": "ISSUED"}, {"status": "CANCELLED"}},
	}

	reg := NewFacetRegistry()
	union := map[string]bool{}
	var prev []string

	for i, ds := range datasets {
		reg.Observe(ds, facetColumns)
		for _, rec := range ds {
			union[rec["status"].(string)] = true
		}

		got := reg.Values("status")
		for _, v := range prev {
			if !slices.Contains(got, v) {
				t.Errorf("dataset %d: value %q dropped from registry", i, v)
			}
		}
		if len(got) != len(union) {
			t.Errorf("dataset %d: %d values, want %d (union of all observed)", i, len(got), len(union))
		}
		if !slices.IsSorted(got) {
			t.Errorf("dataset %d: values not sorted: %v", i, got)
		}
		prev = got
	}
}

func TestFacetRegistry_RawValues(t *testing.T) {
	cols := []Column{{Key: "qty", Type: TypeNumber, Filterable: true}}
	reg := NewFacetRegistry()
	reg.Observe([]Record{{"qty": int64(5)}, {"qty": 12.5}, {"qty": 5.0}}, cols)

	raws, ok := reg.RawValues("qty", "5")
	if !ok {
		t.Fatal("RawValues(qty, 5) not found")
	}
	if diff := cmp.Diff([]any{5.0}, raws); diff != "" {
		t.Errorf("RawValues(qty, 5) mismatch (-want +got):\n%s", diff)
	}

	if _, ok := reg.RawValues("qty", "7"); ok {
		t.Error("RawValues for unseen label should report false")
	}
}

func TestFacetRegistry_MixedKindsShareLabel(t *testing.T) {
	cols := []Column{{Key: "code", Type: TypeText, Filterable: true}}
	reg := NewFacetRegistry()
	reg.Observe([]Record{{"code": 5}, {"code": "5"}, {"code": "A"}}, cols)

	if diff := cmp.Diff([]string{"5", "A"}, reg.Values("code")); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	raws, _ := reg.RawValues("code", "5")
	if diff := cmp.Diff([]any{5.0, "5"}, raws); diff != "" {
		t.Errorf("RawValues(code, 5) mismatch (-want +got):\n%s", diff)
	}
}

func TestFacetRegistry_ValuesIsCopy(t *testing.T) {
	reg := NewFacetRegistry()
	reg.Observe([]Record{{"status": "A"}, {"status": "B"}}, facetColumns)

	got := reg.Values("status")
	got[0] = "mutated"

	if reg.Values("status")[0] != "A" {
		t.Error("Values returned a slice aliasing registry state")
	}
}
