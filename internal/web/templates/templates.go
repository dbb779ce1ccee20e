// Package templates renders HTML fragments for HTMX requests.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/procurement/internal/table"
)

// TableData is what the table fragment needs: the session it posts back to
// and the snapshot to draw.
type TableData struct {
	SessionID string
	Label     string
	View      table.View
}

// ErrorAlert renders a dismissible error box.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="alert alert-error" role="alert">`)
		fmt.Fprintf(&b, `<p class="alert-message">%s</p>`, templ.EscapeString(message))
		if action != "" {
			fmt.Fprintf(&b, `<p class="alert-action">%s</p>`, templ.EscapeString(action))
		}
		if code != "" {
			fmt.Fprintf(&b, `<span class="alert-code">%s</span>`, templ.EscapeString(code))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Table renders a list view: toolbar, facet dropdowns, rows and pagination.
// Every control posts to the session's action endpoints and swaps the
// fragment in place.
func Table(d TableData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		base := "/api/sessions/" + url.PathEscape(d.SessionID)

		fmt.Fprintf(&b, `<section id="table-%s" class="list-view" hx-target="this" hx-swap="outerHTML">`,
			templ.EscapeString(d.SessionID))
		fmt.Fprintf(&b, `<h2>%s</h2>`, templ.EscapeString(d.Label))

		writeToolbar(&b, base, d.View)
		writeFacets(&b, base, d.View.Facets)
		writeGrid(&b, base, d.View)
		writePagination(&b, base, d.View.Pagination)

		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeToolbar(b *strings.Builder, base string, v table.View) {
	b.WriteString(`<div class="toolbar">`)
	fmt.Fprintf(b, `<input type="search" name="q" value="%s" placeholder="%s" hx-post="%s/search" hx-trigger="input changed delay:300ms">`,
		templ.EscapeString(v.Search), templ.EscapeString(v.SearchPlaceholder), base)
	if v.HasActiveFilters {
		fmt.Fprintf(b, `<button type="button" hx-post="%s/clear">Clear filters</button>`, base)
	}
	b.WriteString(`</div>`)
}

func writeFacets(b *strings.Builder, base string, facets []table.Facet) {
	if len(facets) == 0 {
		return
	}
	b.WriteString(`<div class="facets">`)
	for _, f := range facets {
		col := url.PathEscape(f.Column)
		label := templ.EscapeString(f.Label)
		if f.SelectedCount > 0 {
			label += " (" + strconv.Itoa(f.SelectedCount) + ")"
		}
		fmt.Fprintf(b, `<div class="facet"><button type="button" hx-post="%s/facets/%s/toggle">%s</button>`, base, col, label)
		if f.Open {
			// Escape or a click outside the menu closes it.
			fmt.Fprintf(b, `<div class="facet-backdrop" hx-post="%s/facets/close" hx-trigger="click"></div>`, base)
			fmt.Fprintf(b, `<div class="facet-menu" hx-post="%s/facets/close" hx-trigger="keyup[key=='Escape'] from:body">`, base)
			fmt.Fprintf(b, `<button type="button" hx-post="%s/filters/%s/all">Select all</button>`, base, col)
			fmt.Fprintf(b, `<button type="button" hx-post="%s/filters/%s/clear">Clear</button>`, base, col)
			for _, o := range f.Options {
				checked := ""
				if o.Selected {
					checked = " checked"
				}
				fmt.Fprintf(b, `<label><input type="checkbox"%s hx-post="%s/filters/%s/toggle?value=%s">%s</label>`,
					checked, base, col, url.QueryEscape(o.Value), templ.EscapeString(o.Value))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

func writeGrid(b *strings.Builder, base string, v table.View) {
	b.WriteString(`<table class="grid"><thead><tr>`)
	for _, c := range v.Columns {
		indicator := ""
		switch c.Sort {
		case table.Asc:
			indicator = " ▲"
		case table.Desc:
			indicator = " ▼"
		}
		fmt.Fprintf(b, `<th class="col-%s" hx-post="%s/sort/%s">%s%s</th>`,
			c.Type, base, url.PathEscape(c.Key), templ.EscapeString(c.Label), indicator)
	}
	b.WriteString(`</tr></thead><tbody>`)

	if len(v.Rows) == 0 {
		fmt.Fprintf(b, `<tr class="empty"><td colspan="%d">No records found</td></tr>`, len(v.Columns))
	}
	for _, r := range v.Rows {
		fmt.Fprintf(b, `<tr data-key="%s">`, templ.EscapeString(r.Key))
		for i, cell := range r.Cells {
			class := ""
			if i < len(v.Columns) {
				class = v.Columns[i].Type.String()
			}
			fmt.Fprintf(b, `<td class="col-%s">%s</td>`, class, templ.EscapeString(cell))
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func writePagination(b *strings.Builder, base string, p table.PageInfo) {
	b.WriteString(`<nav class="pagination">`)
	fmt.Fprintf(b, `<span class="range">%d–%d of %d</span>`, p.Start, p.End, p.TotalRecords)

	if p.HasPrev {
		fmt.Fprintf(b, `<button type="button" hx-post="%s/page?page=%d">Previous</button>`, base, p.Page-1)
	}
	for _, link := range p.Links {
		if link.Ellipsis {
			b.WriteString(`<span class="ellipsis">…</span>`)
			continue
		}
		current := ""
		if link.Current {
			current = ` aria-current="page"`
		}
		fmt.Fprintf(b, `<button type="button"%s hx-post="%s/page?page=%d">%d</button>`, current, base, link.Page, link.Page)
	}
	if p.HasNext {
		fmt.Fprintf(b, `<button type="button" hx-post="%s/page?page=%d">Next</button>`, base, p.Page+1)
	}

	fmt.Fprintf(b, `<select name="size" hx-post="%s/page-size" hx-trigger="change">`, base)
	for _, size := range p.PageSizeOptions {
		selected := ""
		if size == p.PageSize {
			selected = " selected"
		}
		fmt.Fprintf(b, `<option value="%d"%s>%d per page</option>`, size, selected, size)
	}
	b.WriteString(`</select></nav>`)
}
