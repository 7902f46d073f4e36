package crmclient

import (
	"net/url"
	"sort"
	"strconv"
)

// Filters narrows the lead list by status, source, creation date and
// owner/team. Empty values apply no restriction.
type Filters struct {
	Status string
	Source string
	Date   string
	Owner  string
}

// QueryState holds the current (search, filters, sort, page) tuple the way
// the UI does. Any change to search, filters or sort resets the page to 1;
// page changes leave the rest alone. Selection is cleared on every change to
// the tuple, because the visible page may no longer match it.
type QueryState struct {
	search        string
	filters       Filters
	sortField     string
	sortDirection string
	page          int
	limit         int

	selected map[int64]struct{}
}

// NewQueryState returns the default state: page 1, 10 rows, newest first.
func NewQueryState() *QueryState {
	return &QueryState{
		sortField:     "createdDate",
		sortDirection: "desc",
		page:          1,
		limit:         10,
		selected:      make(map[int64]struct{}),
	}
}

func (s *QueryState) Search() string        { return s.search }
func (s *QueryState) Filters() Filters      { return s.filters }
func (s *QueryState) SortField() string     { return s.sortField }
func (s *QueryState) SortDirection() string { return s.sortDirection }
func (s *QueryState) Page() int             { return s.page }
func (s *QueryState) Limit() int            { return s.limit }

// SetSearch updates the search term and rewinds to the first page.
func (s *QueryState) SetSearch(search string) {
	if s.search == search {
		return
	}
	s.search = search
	s.resetPage()
}

// SetFilters replaces the filter selections and rewinds to the first page.
func (s *QueryState) SetFilters(f Filters) {
	if s.filters == f {
		return
	}
	s.filters = f
	s.resetPage()
}

// SetSort updates the sort tuple and rewinds to the first page.
func (s *QueryState) SetSort(field, direction string) {
	if s.sortField == field && s.sortDirection == direction {
		return
	}
	s.sortField = field
	s.sortDirection = direction
	s.resetPage()
}

// SetPage moves to another page without touching search, filters or sort.
// The selection still clears: it belonged to the previous page.
func (s *QueryState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if s.page == page {
		return
	}
	s.page = page
	s.clearSelection()
}

// SetLimit changes the page size and rewinds to the first page.
func (s *QueryState) SetLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	if s.limit == limit {
		return
	}
	s.limit = limit
	s.resetPage()
}

func (s *QueryState) resetPage() {
	s.page = 1
	s.clearSelection()
}

// ToggleSelect flips the checkbox for one lead id.
func (s *QueryState) ToggleSelect(id int64) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
}

// SelectPage checks every record of the currently loaded page. It never
// covers the whole filtered set, only what the caller has in front of them.
func (s *QueryState) SelectPage(ids []int64) {
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
}

// Selected returns the checked lead ids in ascending order.
func (s *QueryState) Selected() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsSelected reports whether the id is checked.
func (s *QueryState) IsSelected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *QueryState) clearSelection() {
	s.selected = make(map[int64]struct{})
}

// Values serializes the state into the query string the list endpoint
// expects. Empty search and filter values are omitted.
func (s *QueryState) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(s.page))
	v.Set("limit", strconv.Itoa(s.limit))
	v.Set("sortField", s.sortField)
	v.Set("sortDirection", s.sortDirection)

	if s.search != "" {
		v.Set("search", s.search)
	}
	if s.filters.Status != "" {
		v.Set("status", s.filters.Status)
	}
	if s.filters.Source != "" {
		v.Set("source", s.filters.Source)
	}
	if s.filters.Date != "" {
		v.Set("date", s.filters.Date)
	}
	if s.filters.Owner != "" {
		v.Set("owner", s.filters.Owner)
	}
	return v
}
