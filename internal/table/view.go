package table

// View is the render-ready snapshot of a Table.
type View struct {
	Columns           []ColumnView `json:"columns"`
	Rows              []Row        `json:"rows"`
	Facets            []Facet      `json:"facets"`
	Pagination        PageInfo     `json:"pagination"`
	Search            string       `json:"search"`
	SearchPlaceholder string       `json:"searchPlaceholder"`
	Sort              SortState    `json:"sort"`
	OpenFacet         string       `json:"openFacet,omitempty"`
	HasActiveFilters  bool         `json:"hasActiveFilters"`
	ServerSide        bool         `json:"serverSide"`
}

// ColumnView describes a header cell.
type ColumnView struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Type       ColumnType `json:"type"`
	Filterable bool       `json:"filterable"`
	Sort       Direction  `json:"sort,omitempty"` // set on the sorted column only
}

// Row is one display row. Cells follow the column order.
type Row struct {
	Key    string   `json:"key"`
	Record Record   `json:"record"`
	Cells  []string `json:"cells"`
}

// Facet is a column's filter dropdown.
type Facet struct {
	Column        string        `json:"column"`
	Label         string        `json:"label"`
	Options       []FacetOption `json:"options"`
	SelectedCount int           `json:"selectedCount"`
	Open          bool          `json:"open"`
}

// FacetOption is one checkbox in a facet dropdown.
type FacetOption struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// PageInfo carries pagination metadata for the navigation bar.
type PageInfo struct {
	Page            int        `json:"page"`
	PageSize        int        `json:"pageSize"`
	TotalPages      int        `json:"totalPages"`
	TotalRecords    int        `json:"totalRecords"`
	Start           int        `json:"start"`
	End             int        `json:"end"`
	PageSizeOptions []int      `json:"pageSizeOptions"`
	Links           []PageLink `json:"links"`
	HasPrev         bool       `json:"hasPrev"`
	HasNext         bool       `json:"hasNext"`
}

// View builds the current snapshot.
func (t *Table) View() View {
	v := View{
		Search:            t.search,
		SearchPlaceholder: t.cfg.SearchPlaceholder,
		Sort:              t.sort,
		OpenFacet:         t.openFacet,
		HasActiveFilters:  t.HasActiveFilters(),
		ServerSide:        t.ServerSide(),
	}

	v.Columns = make([]ColumnView, len(t.columns))
	for i, col := range t.columns {
		cv := ColumnView{
			Key:        col.Key,
			Label:      col.Label,
			Type:       col.Type,
			Filterable: col.IsFilterable(),
		}
		if t.sort.Key == col.Key {
			cv.Sort = t.sort.Direction
		}
		v.Columns[i] = cv
	}

	v.Rows = make([]Row, len(t.visible))
	for i, rec := range t.visible {
		cells := make([]string, len(t.columns))
		for j, col := range t.columns {
			cells[j] = FormatCell(col, rec)
		}
		v.Rows[i] = Row{Key: RowKey(rec, i), Record: rec, Cells: cells}
	}

	v.Facets = t.facetViews()
	v.Pagination = t.pageInfo()
	return v
}

func (t *Table) facetViews() []Facet {
	facets := []Facet{}
	for _, col := range t.columns {
		if !col.IsFilterable() {
			continue
		}

		selected := t.selections[col.Key]
		labels := t.facets.Values(col.Key)
		f := Facet{
			Column:        col.Key,
			Label:         col.Label,
			Options:       make([]FacetOption, len(labels)),
			Open:          t.openFacet == col.Key,
		}
		for i, label := range labels {
			raws, _ := t.facets.RawValues(col.Key, label)
			on := selected.HasAny(raws)
			if on {
				f.SelectedCount++
			}
			f.Options[i] = FacetOption{Value: label, Selected: on}
		}
		facets = append(facets, f)
	}
	return facets
}

func (t *Table) pageInfo() PageInfo {
	total := t.TotalRecords()
	start, end := Range(total, t.page, t.pageSize)
	return PageInfo{
		Page:            t.page,
		PageSize:        t.pageSize,
		TotalPages:      t.totalPages,
		TotalRecords:    total,
		Start:           start,
		End:             end,
		PageSizeOptions: t.cfg.PageSizeOptions,
		Links:           PageWindow(t.page, t.totalPages),
		HasPrev:         t.page > 1,
		HasNext:         t.page < t.totalPages,
	}
}
