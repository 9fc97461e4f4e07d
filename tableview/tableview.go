package tableview

import (
	"sort"
	"strings"
)

// Direction is the sort direction of the active column.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Document is a loaded table row. Fields returns the row's values coerced to
// strings; optional fields that are absent from the document contribute an
// empty string.
type Document interface {
	DocumentID() string
	Fields() map[string]string
}

// ViewState holds a loaded document set together with the current query and
// sort selection. Values are immutable: every transition returns a new state
// and Apply derives the visible rows from scratch without mutating the loaded
// set.
type ViewState[T Document] struct {
	items     []T
	query     string
	sortBy    string
	direction Direction
}

// NewViewState returns a view over the given loaded documents with no query
// and no active sort column.
func NewViewState[T Document](items []T) ViewState[T] {
	return ViewState[T]{
		items:     items,
		direction: Ascending,
	}
}

// Items returns the loaded documents in their original load order.
func (s ViewState[T]) Items() []T {
	return s.items
}

// Query returns the current search query.
func (s ViewState[T]) Query() string {
	return s.query
}

// SortBy returns the active sort column, or an empty string when the view
// keeps the load order.
func (s ViewState[T]) SortBy() string {
	return s.sortBy
}

// Direction returns the direction of the active sort column.
func (s ViewState[T]) Direction() Direction {
	return s.direction
}

// WithQuery returns a state with the given search query.
func (s ViewState[T]) WithQuery(query string) ViewState[T] {
	s.query = query
	return s
}

// ToggleSort returns a state sorted by the given column. Selecting the active
// column flips its direction; selecting a different column makes it active in
// ascending order.
func (s ViewState[T]) ToggleSort(column string) ViewState[T] {
	if s.sortBy == column {
		if s.direction == Ascending {
			s.direction = Descending
		} else {
			s.direction = Ascending
		}

		return s
	}

	s.sortBy = column
	s.direction = Ascending

	return s
}

// WithSort returns a state sorted by the given column and direction.
func (s ViewState[T]) WithSort(column string, direction Direction) ViewState[T] {
	s.sortBy = column

	if direction == Descending {
		s.direction = Descending
	} else {
		s.direction = Ascending
	}

	return s
}

// Remove returns a state with the document of the given id pruned from the
// loaded set. Used after a confirmed delete so the table updates without a
// re-fetch.
func (s ViewState[T]) Remove(id string) ViewState[T] {
	items := make([]T, 0, len(s.items))

	for _, item := range s.items {
		if item.DocumentID() != id {
			items = append(items, item)
		}
	}

	s.items = items

	return s
}

// Apply derives the visible rows: filter by the query, then sort by the
// active column.
func (s ViewState[T]) Apply() []T {
	return Sort(Filter(s.items, s.query), s.sortBy, s.direction)
}

// Filter returns the documents whose field values contain the query,
// case-insensitive. An empty query matches every document.
func Filter[T Document](items []T, query string) []T {
	filtered := make([]T, 0, len(items))

	if query == "" {
		return append(filtered, items...)
	}

	query = strings.ToLower(query)

	for _, item := range items {
		for _, value := range item.Fields() {
			if strings.Contains(strings.ToLower(value), query) {
				filtered = append(filtered, item)
				break
			}
		}
	}

	return filtered
}

// Sort returns the documents ordered by the given column's value,
// case-insensitive lexicographic. Documents missing the column compare as an
// empty string. The sort is stable, so equal keys keep their load order. An
// empty column returns the documents unchanged.
func Sort[T Document](items []T, column string, direction Direction) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	if column == "" {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Fields()[column])
		b := strings.ToLower(sorted[j].Fields()[column])

		if direction == Descending {
			return a > b
		}

		return a < b
	})

	return sorted
}
