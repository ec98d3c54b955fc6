// Package view derives the filtered and grouped lists shown to the user and
// fed to the exporter. All functions are pure.
package view

import (
	"sort"
	"strings"

	"github.com/Tiliavir/legacy-echo/internal/model"
)

// AllCategories disables category filtering.
const AllCategories = "All"

// Filter narrows the entry list. The zero value matches everything.
type Filter struct {
	Category string
	Text     string
}

// Matches reports whether e passes f.
func (f Filter) Matches(e model.Entry) bool {
	if f.Category != "" && f.Category != AllCategories && e.Category != f.Category {
		return false
	}
	if f.Text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(searchText(e)), strings.ToLower(f.Text))
}

// searchText joins all field values in field-name order.
func searchText(e model.Entry) string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = e.Fields[name]
	}
	return strings.Join(values, " ")
}

// Apply returns the entries that match f, in input order.
func Apply(entries []model.Entry, f Filter) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Group is the run of entries belonging to one category.
type Group struct {
	Category string
	Entries  []model.Entry
}

// GroupByCategory partitions entries by category. Groups appear in the order
// their category is first seen; entries keep their relative order.
func GroupByCategory(entries []model.Entry) []Group {
	var groups []Group
	index := map[string]int{}
	for _, e := range entries {
		i, seen := index[e.Category]
		if !seen {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, Group{Category: e.Category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Count returns the number of entries across groups.
func Count(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Entries)
	}
	return n
}
