package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func makeRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{"id": i + 1}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{107, 25, 5},
		{100, 25, 4},
		{1, 25, 1},
		{0, 25, 0},
		{-3, 25, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		total, page, size int
		wantStart         int
		wantEnd           int
	}{
		{107, 1, 25, 1, 25},
		{107, 5, 25, 101, 107},
		{0, 1, 25, 0, 0},
	}

	for _, tt := range tests {
		start, end := Range(tt.total, tt.page, tt.size)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Range(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.total, tt.page, tt.size, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestSlice(t *testing.T) {
	records := makeRecords(107)

	last := Slice(records, 5, 25)
	if len(last) != 7 {
		t.Fatalf("page 5 has %d records, want 7", len(last))
	}
	if diff := cmp.Diff([]float64{101, 102, 103, 104, 105, 106, 107}, ids(last)); diff != "" {
		t.Errorf("page 5 mismatch (-want +got):\n%s", diff)
	}

	first := Slice(records, 1, 25)
	if len(first) != 25 || first[0].Value("id") != 1.0 {
		t.Errorf("page 1 = %d records starting at %v, want 25 starting at 1", len(first), first[0].Value("id"))
	}

	if got := Slice(records, 6, 25); len(got) != 0 {
		t.Errorf("page past the end has %d records, want 0", len(got))
	}
	if got := Slice(nil, 1, 25); got == nil || len(got) != 0 {
		t.Errorf("Slice(nil) = %#v, want empty slice", got)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{3, 5, 3},
		{9, 5, 5},
		{0, 5, 1},
		{4, 0, 1},
	}

	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
		}
	}
}

func TestNormalizePageSize(t *testing.T) {
	opts := []int{25, 50, 75, 100}
	tests := []struct {
		size, want int
	}{
		{50, 50},
		{0, 25},
		{-10, 25},
		{60, 50},
		{63, 75},
		{500, 100},
	}

	for _, tt := range tests {
		if got := NormalizePageSize(tt.size, opts); got != tt.want {
			t.Errorf("NormalizePageSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}

	if got := NormalizePageSize(0, nil); got != 25 {
		t.Errorf("NormalizePageSize with no options = %d, want 25", got)
	}
}

func TestPageWindow(t *testing.T) {
	gap := PageLink{Ellipsis: true}
	p := func(n int) PageLink { return PageLink{Page: n} }
	cur := func(n int) PageLink { return PageLink{Page: n, Current: true} }

	tests := []struct {
		name           string
		current, total int
		want           []PageLink
	}{
		{"no pages", 1, 0, []PageLink{}},
		{"all pages when few", 2, 5, []PageLink{p(1), cur(2), p(3), p(4), p(5)}},
		{"near start", 3, 10, []PageLink{p(1), p(2), cur(3), p(4), gap, p(10)}},
		{"near end", 8, 10, []PageLink{p(1), gap, p(7), cur(8), p(9), p(10)}},
		{"middle", 5, 10, []PageLink{p(1), gap, p(4), cur(5), p(6), gap, p(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, PageWindow(tt.current, tt.total)); diff != "" {
				t.Errorf("PageWindow(%d, %d) mismatch (-want +got):\n%s", tt.current, tt.total, diff)
			}
		})
	}
}

func TestPaginator_ServerModeForwards(t *testing.T) {
	var pageCalls, sizeCalls [][2]int
	p := NewPaginator(ModeServer,
		func(page, size int) { pageCalls = append(pageCalls, [2]int{page, size}) },
		func(page, size int) { sizeCalls = append(sizeCalls, [2]int{page, size}) },
	)

	records := makeRecords(25)
	if got := p.Page(records, 3, 25); len(got) != 25 {
		t.Errorf("server mode sliced records: got %d, want 25", len(got))
	}

	p.PageChanged(3, 25)
	p.PageSizeChanged(1, 50)

	if diff := cmp.Diff([][2]int{{3, 25}}, pageCalls); diff != "" {
		t.Errorf("page calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{1, 50}}, sizeCalls); diff != "" {
		t.Errorf("page size calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPaginator_ClientModeDoesNotNotify(t *testing.T) {
	called := false
	p := NewPaginator(ModeClient, func(int, int) { called = true }, func(int, int) { called = true })

	if got := p.Page(makeRecords(30), 2, 25); len(got) != 5 {
		t.Errorf("client page 2 has %d records, want 5", len(got))
	}
	p.PageChanged(2, 25)
	p.PageSizeChanged(1, 50)
	if called {
		t.Error("client mode invoked a page callback")
	}
}
