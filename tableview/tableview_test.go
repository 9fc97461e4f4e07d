package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	id     string
	fields map[string]string
}

func (r row) DocumentID() string {
	return r.id
}

func (r row) Fields() map[string]string {
	return r.fields
}

func makeRows() []row {
	return []row{
		{id: "1", fields: map[string]string{"name": "beta", "email": "beta@acme.com"}},
		{id: "2", fields: map[string]string{"name": "Alpha", "email": "alpha@acme.com"}},
		{id: "3", fields: map[string]string{"name": "Gamma", "email": "gamma@acme.com"}},
	}
}

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}

	return out
}

func TestFilter(t *testing.T) {
	rows := makeRows()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "empty query returns every row in load order",
			query:   "",
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "substring matches case-insensitive",
			query:   "alp",
			wantIDs: []string{"2"},
		},
		{
			name:    "query matches any field",
			query:   "GAMMA@",
			wantIDs: []string{"3"},
		},
		{
			name:    "no match yields empty set",
			query:   "zzz",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(rows, tt.query)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	rows := makeRows()

	once := Filter(rows, "acme")
	twice := Filter(once, "acme")

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := makeRows()

	_ = Filter(rows, "alp")

	assert.Equal(t, []string{"1", "2", "3"}, ids(rows))
}

func TestSort(t *testing.T) {
	rows := makeRows()

	tests := []struct {
		name      string
		column    string
		direction Direction
		wantIDs   []string
	}{
		{
			name:      "ascending is case-insensitive",
			column:    "name",
			direction: Ascending,
			wantIDs:   []string{"2", "1", "3"}, // Alpha, beta, Gamma
		},
		{
			name:      "descending reverses the order",
			column:    "name",
			direction: Descending,
			wantIDs:   []string{"3", "1", "2"},
		},
		{
			name:      "empty column keeps load order",
			column:    "",
			direction: Ascending,
			wantIDs:   []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(rows, tt.column, tt.direction)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSortMissingFieldComparesAsEmpty(t *testing.T) {
	rows := []row{
		{id: "1", fields: map[string]string{"name": "beta", "port": "8080"}},
		{id: "2", fields: map[string]string{"name": "Alpha"}},
		{id: "3", fields: map[string]string{"name": "Gamma", "port": "3000"}},
	}

	got := Sort(rows, "port", Ascending)

	// the row without a port sorts first
	assert.Equal(t, []string{"2", "3", "1"}, ids(got))
}

func TestSortIsStable(t *testing.T) {
	rows := []row{
		{id: "1", fields: map[string]string{"name": "same"}},
		{id: "2", fields: map[string]string{"name": "same"}},
		{id: "3", fields: map[string]string{"name": "same"}},
	}

	got := Sort(rows, "name", Ascending)

	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestViewStateToggleSort(t *testing.T) {
	s := NewViewState(makeRows())

	s = s.ToggleSort("name")
	assert.Equal(t, "name", s.SortBy())
	assert.Equal(t, Ascending, s.Direction())
	assert.Equal(t, []string{"2", "1", "3"}, ids(s.Apply()))

	// second click on the same column flips the direction
	s = s.ToggleSort("name")
	assert.Equal(t, Descending, s.Direction())
	assert.Equal(t, []string{"3", "1", "2"}, ids(s.Apply()))

	// a different column resets to ascending
	s = s.ToggleSort("email")
	assert.Equal(t, "email", s.SortBy())
	assert.Equal(t, Ascending, s.Direction())
}

func TestViewStateWithSortDefaultsToAscending(t *testing.T) {
	s := NewViewState(makeRows()).WithSort("name", "sideways")

	assert.Equal(t, Ascending, s.Direction())
}

func TestViewStateApplyFiltersThenSorts(t *testing.T) {
	s := NewViewState(makeRows()).
		WithQuery("acme").
		WithSort("name", Descending)

	assert.Equal(t, []string{"3", "1", "2"}, ids(s.Apply()))

	// derivation never mutates the loaded set
	assert.Equal(t, []string{"1", "2", "3"}, ids(s.Items()))
}

func TestViewStateRemove(t *testing.T) {
	s := NewViewState(makeRows()).Remove("2")

	assert.Equal(t, []string{"1", "3"}, ids(s.Items()))

	// removing an unknown id is a no-op
	s = s.Remove("nope")
	assert.Equal(t, []string{"1", "3"}, ids(s.Items()))
}

func TestViewStateQueryAndSortSurviveRemove(t *testing.T) {
	s := NewViewState(makeRows()).
		WithQuery("acme").
		ToggleSort("name").
		Remove("1")

	assert.Equal(t, "acme", s.Query())
	assert.Equal(t, "name", s.SortBy())
	assert.Equal(t, []string{"2", "3"}, ids(s.Apply()))
}
