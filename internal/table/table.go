package table

import "slices"

// Config configures a Table. Zero values are usable: page size falls back
// to the nearest of DefaultPageSizeOptions and the table pages locally.
type Config struct {
	SearchPlaceholder string
	InitialPageSize   int
	PageSizeOptions   []int

	// ServerSide switches the paginator to ModeServer. The data source then
	// supplies one page via SetData and the full count via SetTotalRecords.
	ServerSide   bool
	TotalRecords int

	// OnPageChange and OnPageSizeChange are called in server mode whenever
	// the requested page or page size changes. They must not call back into
	// the Table.
	OnPageChange     PageFunc
	OnPageSizeChange PageFunc
}

// Table owns the view state of one list and derives the visible page from it.
type Table struct {
	columns   []Column
	cfg       Config
	facets    *FacetRegistry
	paginator *Paginator

	records []Record // normalized input
	total   int      // server mode total

	search     string
	selections Selections
	sort       SortState
	page       int
	pageSize   int
	openFacet  string

	// derived on every recompute
	sorted     []Record
	visible    []Record
	totalPages int
}

// New creates a table for the given columns with no data.
func New(columns []Column, cfg Config) *Table {
	if len(cfg.PageSizeOptions) == 0 {
		cfg.PageSizeOptions = DefaultPageSizeOptions
	}
	cfg.PageSizeOptions = slices.Clone(cfg.PageSizeOptions)

	mode := ModeClient
	if cfg.ServerSide {
		mode = ModeServer
	}

	t := &Table{
		columns:    slices.Clone(columns),
		cfg:        cfg,
		facets:     NewFacetRegistry(),
		paginator:  NewPaginator(mode, cfg.OnPageChange, cfg.OnPageSizeChange),
		records:    []Record{},
		total:      max(cfg.TotalRecords, 0),
		selections: make(Selections),
		sort:       SortState{Direction: Asc},
		page:       1,
		pageSize:   NormalizePageSize(cfg.InitialPageSize, cfg.PageSizeOptions),
	}
	t.recompute()
	return t
}

// Columns returns the table's column descriptors.
func (t *Table) Columns() []Column { return slices.Clone(t.columns) }

// ServerSide reports whether the table runs in server mode.
func (t *Table) ServerSide() bool { return t.paginator.Mode() == ModeServer }

// Page returns the current 1-based page.
func (t *Table) Page() int { return t.page }

// PageSize returns the current page size.
func (t *Table) PageSize() int { return t.pageSize }

// TotalPages returns the number of pages for the current filtered set.
func (t *Table) TotalPages() int { return t.totalPages }

// SearchTerm returns the active search term.
func (t *Table) SearchTerm() string { return t.search }

// SortState returns the active sort.
func (t *Table) SortState() SortState { return t.sort }

// Selections returns a copy of the active facet selections.
func (t *Table) Selections() Selections { return t.selections.clone() }

// OpenFacet returns the column whose facet dropdown is open, or "".
func (t *Table) OpenFacet() string { return t.openFacet }

// Facets returns the table's facet registry.
func (t *Table) Facets() *FacetRegistry { return t.facets }

// Records returns the records on the current page.
func (t *Table) Records() []Record { return slices.Clone(t.visible) }

// Filtered returns every record that passes search and facet filters, in
// sort order.
func (t *Table) Filtered() []Record { return slices.Clone(t.sorted) }

// TotalRecords is the record count pagination is computed from: the filtered
// count in client mode, the externally supplied count in server mode.
func (t *Table) TotalRecords() int {
	if t.ServerSide() {
		return t.total
	}
	return len(t.sorted)
}

// HasActiveFilters reports whether a search term or any facet selection is set.
func (t *Table) HasActiveFilters() bool {
	return t.search != "" || t.selections.Active()
}

// SetData replaces the record set. Facet values are merged into the
// registry. The page returns to 1 when the number of records changes; in
// server mode page-length changes are ignored and SetTotalRecords decides.
func (t *Table) SetData(records []Record) {
	prev := len(t.records)
	t.records = NormalizeRecords(records)
	t.facets.Observe(t.records, t.columns)

	if !t.ServerSide() && len(t.records) != prev {
		t.resetPage()
	}
	t.recompute()
}

// SetTotalRecords sets the externally known record count (server mode).
// A changed count returns the table to page 1.
func (t *Table) SetTotalRecords(n int) {
	n = max(n, 0)
	if n == t.total {
		return
	}
	t.total = n
	t.resetPage()
	t.recompute()
}

// Search sets the free-text search term.
func (t *Table) Search(term string) {
	if term == t.search {
		return
	}
	t.search = term
	t.resetPage()
	t.recompute()
}

// ToggleFilter adds or removes the facet value labelled label for column.
// Labels come from the facet registry; a label the registry has never seen
// is matched as a plain string. A label standing for several raw values
// toggles all of them together.
func (t *Table) ToggleFilter(column, label string) {
	if !t.isFacetColumn(column) {
		return
	}

	raws, ok := t.facets.RawValues(column, label)
	if !ok {
		raws = []any{label}
	}

	set := t.selections[column]
	if set == nil {
		set = make(ValueSet)
		t.selections[column] = set
	}
	if set.HasAny(raws) {
		for _, raw := range raws {
			delete(set, raw)
		}
	} else {
		for _, raw := range raws {
			set[raw] = struct{}{}
		}
	}

	t.resetPage()
	t.recompute()
}

// SelectAll selects every known facet value for column.
func (t *Table) SelectAll(column string) {
	if !t.isFacetColumn(column) {
		return
	}

	set := make(ValueSet)
	for _, label := range t.facets.Values(column) {
		raws, _ := t.facets.RawValues(column, label)
		for _, raw := range raws {
			set[raw] = struct{}{}
		}
	}
	if sameSet(set, t.selections[column]) {
		return
	}
	t.selections[column] = set

	t.resetPage()
	t.recompute()
}

// ClearFilter empties the selection for column.
func (t *Table) ClearFilter(column string) {
	if len(t.selections[column]) == 0 {
		return
	}
	t.selections[column] = make(ValueSet)

	t.resetPage()
	t.recompute()
}

// SetSelections replaces all facet selections.
func (t *Table) SetSelections(selections Selections) {
	next := make(Selections, len(selections))
	for column, set := range selections {
		norm := make(ValueSet, len(set))
		for v := range set {
			norm[Normalize(v)] = struct{}{}
		}
		next[column] = norm
	}
	if sameSelections(next, t.selections) {
		return
	}
	t.selections = next

	t.resetPage()
	t.recompute()
}

// ToggleSort sorts by column ascending, or flips to descending when column is
// already sorted ascending. Sorting never changes the page.
func (t *Table) ToggleSort(column string) {
	dir := Asc
	if t.sort.Key == column && t.sort.Direction == Asc {
		dir = Desc
	}
	t.SetSort(column, dir)
}

// SetSort sets the sort column and direction. An empty column restores input
// order; unknown columns are ignored.
func (t *Table) SetSort(column string, dir Direction) {
	if column != "" && !t.hasColumn(column) {
		return
	}
	if dir != Desc {
		dir = Asc
	}
	t.sort = SortState{Key: column, Direction: dir}
	t.recompute()
}

// SetPage moves to page, clamped to the available pages. In server mode the
// data source is notified with the resulting page.
func (t *Table) SetPage(page int) {
	t.page = ClampPage(page, t.totalPages)
	t.paginator.PageChanged(t.page, t.pageSize)
	t.recompute()
}

// SetPageSize changes the page size and returns to page 1. Sizes outside the
// configured options snap to the nearest option.
func (t *Table) SetPageSize(size int) {
	t.pageSize = NormalizePageSize(size, t.cfg.PageSizeOptions)
	t.page = 1
	t.paginator.PageSizeChanged(t.page, t.pageSize)
	t.recompute()
}

// ClearAll resets search, selections, sort and page. Facet values are kept.
func (t *Table) ClearAll() {
	t.search = ""
	t.selections = make(Selections)
	t.sort = SortState{Direction: Asc}
	t.resetPage()
	t.recompute()
}

// ToggleFacet opens the facet dropdown for column, closing any other, or
// closes it when it is already open.
func (t *Table) ToggleFacet(column string) {
	if t.openFacet == column || !t.isFacetColumn(column) {
		t.openFacet = ""
		return
	}
	t.openFacet = column
}

// CloseFacet closes the open facet dropdown, if any.
func (t *Table) CloseFacet() {
	t.openFacet = ""
}

// resetPage returns to page 1, telling a server-side source when the page
// actually moves.
func (t *Table) resetPage() {
	if t.page == 1 {
		return
	}
	t.page = 1
	t.paginator.PageChanged(t.page, t.pageSize)
}

// recompute re-derives the filtered, sorted and paged views from state.
func (t *Table) recompute() {
	filtered := Filter(t.records, t.search, t.selections, t.columns)
	t.sorted = Sort(filtered, t.sort.Key, t.sort.Direction)

	t.totalPages = TotalPages(t.TotalRecords(), t.pageSize)
	if clamped := ClampPage(t.page, t.totalPages); clamped != t.page {
		t.page = clamped
		t.paginator.PageChanged(t.page, t.pageSize)
	}

	t.visible = t.paginator.Page(t.sorted, t.page, t.pageSize)
}

func (t *Table) hasColumn(key string) bool {
	for _, c := range t.columns {
		if c.Key == key {
			return true
		}
	}
	return false
}

func (t *Table) isFacetColumn(key string) bool {
	for _, c := range t.columns {
		if c.Key == key {
			return c.IsFilterable()
		}
	}
	return false
}

func sameSet(a, b ValueSet) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if !b.Has(v) {
			return false
		}
	}
	return true
}

// sameSelections compares selections treating empty and absent sets alike.
func sameSelections(a, b Selections) bool {
	for k, set := range a {
		if !sameSet(set, b[k]) {
			return false
		}
	}
	for k, set := range b {
		if !sameSet(set, a[k]) {
			return false
		}
	}
	return true
}
