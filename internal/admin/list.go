// Package admin provides the back-office listings: every catalog table
// enriched with display names, searchable, filterable and paginated.
package admin

import "strings"

// DefaultPageSize is the page size of a new listing.
const DefaultPageSize = 10

// ClearSearch can be listed in Filter.Clears to reset the search text when
// that filter changes.
const ClearSearch = "search"

// Filter is a named categorical predicate.  Match is only consulted for a
// non-empty value.  Clears names the filters (or ClearSearch) reset when
// this filter is set.
type Filter[T any] struct {
	Name   string
	Match  func(row T, value string) bool
	Clears []string
}

// List is a search/filter/paginate view over a fixed slice of rows.  It is
// not safe for concurrent use.
type List[T any] struct {
	rows    []T
	search  func(row T, query string) bool
	filters []Filter[T]

	query    string
	values   map[string]string
	page     int
	pageSize int
}

// NewList builds a listing over rows.  search receives the trimmed,
// lower-cased query; a nil search ignores the search text.
func NewList[T any](rows []T, search func(row T, query string) bool, filters ...Filter[T]) *List[T] {
	return &List[T]{
		rows:     rows,
		search:   search,
		filters:  filters,
		values:   make(map[string]string, len(filters)),
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// FilterNames lists the filter names in declaration order.  Setting them in
// this order keeps a parent filter from clearing a child set after it.
func (l *List[T]) FilterNames() []string {
	names := make([]string, len(l.filters))
	for i, f := range l.filters {
		names[i] = f.Name
	}
	return names
}

func (l *List[T]) filter(name string) (Filter[T], bool) {
	for _, f := range l.filters {
		if f.Name == name {
			return f, true
		}
	}
	return Filter[T]{}, false
}

// SetSearch replaces the search text and returns to page 1.
func (l *List[T]) SetSearch(q string) {
	l.query = q
	l.page = 1
}

// SetFilter sets a filter value ("" disables it) and returns to page 1.
// Unknown names are ignored.
func (l *List[T]) SetFilter(name, value string) {
	f, ok := l.filter(name)
	if !ok {
		return
	}
	l.values[name] = value
	for _, dep := range f.Clears {
		if dep == ClearSearch {
			l.query = ""
			continue
		}
		delete(l.values, dep)
	}
	l.page = 1
}

// SetPage moves to p when 1 <= p <= TotalPages.
func (l *List[T]) SetPage(p int) {
	if p >= 1 && p <= l.TotalPages() {
		l.page = p
	}
}

// SetPageSize changes the page size and returns to page 1.  n < 1 is
// ignored.
func (l *List[T]) SetPageSize(n int) {
	if n < 1 {
		return
	}
	l.pageSize = n
	l.page = 1
}

// Reset clears search and filters and returns to page 1.
func (l *List[T]) Reset() {
	l.query = ""
	l.values = make(map[string]string, len(l.filters))
	l.page = 1
}

func (l *List[T]) Search() string              { return l.query }
func (l *List[T]) FilterValue(n string) string { return l.values[n] }
func (l *List[T]) CurrentPage() int            { return l.page }
func (l *List[T]) PageSize() int               { return l.pageSize }

// Filtered applies the search and then every active filter in
// registration order.
func (l *List[T]) Filtered() []T {
	out := make([]T, 0, len(l.rows))
	q := strings.ToLower(strings.TrimSpace(l.query))
rows:
	for _, r := range l.rows {
		if q != "" && l.search != nil && !l.search(r, q) {
			continue
		}
		for _, f := range l.filters {
			v := l.values[f.Name]
			if v != "" && !f.Match(r, v) {
				continue rows
			}
		}
		out = append(out, r)
	}
	return out
}

// TotalPages is ceil(len(Filtered) / PageSize).
func (l *List[T]) TotalPages() int {
	n := len(l.Filtered())
	return (n + l.pageSize - 1) / l.pageSize
}

// Page returns the rows of the current page.
func (l *List[T]) Page() []T {
	return pageOf(l.Filtered(), l.page, l.pageSize)
}

func pageOf[T any](rows []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}
	}
	end := min(start+size, len(rows))
	return rows[start:end]
}

// Result is one page of a listing with its paging totals.
type Result[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Result evaluates the listing once.
func (l *List[T]) Result() Result[T] {
	rows := l.Filtered()
	return Result[T]{
		Items:      pageOf(rows, l.page, l.pageSize),
		Page:       l.page,
		PageSize:   l.pageSize,
		Total:      len(rows),
		TotalPages: (len(rows) + l.pageSize - 1) / l.pageSize,
	}
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
