package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFindIndex tests the FindIndex function
func TestFindIndex(t *testing.T) {
	var findIndexPayloads = []struct {
		slice    []string
		item     string
		expected int
	}{
		{[]string{"a", "b", "c"}, "a", 0},
		{[]string{"a", "b", "c"}, "b", 1},
		{[]string{"a", "b", "c"}, "d", -1},
	}

	for _, p := range findIndexPayloads {
		assert.Equal(t, p.expected, FindIndex(p.slice, p.item))
	}
}

// TestContains tests the Contains function
func TestContains(t *testing.T) {
	var containsPayloads = []struct {
		slice    []string
		item     string
		expected bool
	}{
		{[]string{"a", "b", "c"}, "a", true},
		{[]string{"a", "b", "c"}, "b", true},
		{[]string{"a", "b", "c"}, "d", false},
	}

	for _, p := range containsPayloads {
		assert.Equal(t, p.expected, Contains(p.slice, p.item))
	}
}

func TestUnique(t *testing.T) {
	var uniquePayloads = []struct {
		slice    []string
		expected []string
	}{
		{[]string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{[]string{"a"}, []string{"a"}},
		{nil, nil},
	}

	for _, p := range uniquePayloads {
		assert.Equal(t, p.expected, Unique(p.slice))
	}
}
