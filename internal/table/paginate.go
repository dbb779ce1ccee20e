package table

// DefaultPageSizeOptions are the page sizes offered when a Config names none.
var DefaultPageSizeOptions = []int{25, 50, 75, 100}

// maxWindowPages is the number of page links shown before ellipses kick in.
const maxWindowPages = 5

// Mode selects how a Paginator produces a page.
type Mode int

const (
	// ModeClient slices the full record set locally.
	ModeClient Mode = iota
	// ModeServer forwards page changes to the data source, which supplies
	// one page of records and the total count.
	ModeServer
)

// PageFunc receives the requested page and page size in server mode.
type PageFunc func(page, pageSize int)

// Paginator produces one page of records. Its mode is fixed at construction.
type Paginator struct {
	mode             Mode
	onPageChange     PageFunc
	onPageSizeChange PageFunc
}

// NewPaginator returns a paginator in the given mode. The callbacks are only
// invoked in ModeServer; either may be nil.
func NewPaginator(mode Mode, onPageChange, onPageSizeChange PageFunc) *Paginator {
	return &Paginator{
		mode:             mode,
		onPageChange:     onPageChange,
		onPageSizeChange: onPageSizeChange,
	}
}

// Mode returns the paginator's mode.
func (p *Paginator) Mode() Mode {
	return p.mode
}

// Page returns the records to display. In client mode it slices; in server
// mode records already are the page and are returned as given.
func (p *Paginator) Page(records []Record, page, pageSize int) []Record {
	if p.mode == ModeServer {
		return records
	}
	return Slice(records, page, pageSize)
}

// PageChanged notifies the data source of a new page in server mode.
func (p *Paginator) PageChanged(page, pageSize int) {
	if p.mode == ModeServer && p.onPageChange != nil {
		p.onPageChange(page, pageSize)
	}
}

// PageSizeChanged notifies the data source of a new page size in server mode.
func (p *Paginator) PageSizeChanged(page, pageSize int) {
	if p.mode == ModeServer && p.onPageSizeChange != nil {
		p.onPageSizeChange(page, pageSize)
	}
}

// Slice returns records[(page-1)*pageSize : page*pageSize], clipped to the
// slice bounds. Out of range pages yield an empty slice.
func Slice(records []Record, page, pageSize int) []Record {
	if page < 1 || pageSize <= 0 {
		return []Record{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []Record{}
	}
	end := min(start+pageSize, len(records))
	return records[start:end]
}

// TotalPages returns ceil(total/pageSize), never negative.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Range returns the 1-based inclusive record range shown on page.
// Both are 0 when there are no records.
func Range(total, page, pageSize int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	start = (page-1)*pageSize + 1
	end = min(page*pageSize, total)
	return start, end
}

// ClampPage keeps page within [1, totalPages], using 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	if page < 1 {
		return 1
	}
	return page
}

// NormalizePageSize returns size when it is one of options, otherwise the
// nearest option (ties go to the smaller). An empty options list falls back
// to DefaultPageSizeOptions.
func NormalizePageSize(size int, options []int) int {
	if len(options) == 0 {
		options = DefaultPageSizeOptions
	}
	best := options[0]
	bestDist := -1
	for _, opt := range options {
		if opt == size {
			return size
		}
		dist := opt - size
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && opt < best) {
			best, bestDist = opt, dist
		}
	}
	return best
}

// PageLink is one entry of the page navigation: a page number or an ellipsis.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// PageWindow lists the numbered page links for the navigation bar. Up to
// five pages are listed in full; beyond that the first and last page are
// always shown, with ellipses around the pages nearest the current one.
func PageWindow(current, totalPages int) []PageLink {
	var pages []int
	const gap = -1

	switch {
	case totalPages <= maxWindowPages:
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
	case current <= 3:
		pages = []int{1, 2, 3, 4, gap, totalPages}
	case current >= totalPages-2:
		pages = []int{1, gap, totalPages - 3, totalPages - 2, totalPages - 1, totalPages}
	default:
		pages = []int{1, gap, current - 1, current, current + 1, gap, totalPages}
	}

	links := make([]PageLink, len(pages))
	for i, p := range pages {
		if p == gap {
			links[i] = PageLink{Ellipsis: true}
			continue
		}
		links[i] = PageLink{Page: p, Current: p == current}
	}
	return links
}
