package query

import (
	"testing"

	"pedia-cli/shared"
	"pedia-cli/types"
)

func makeEntry(id int, title, content string, categoryId int, tagIds ...int) *shared.Entry {
	var category *shared.Category
	if categoryId != 0 {
		category = &shared.Category{Id: categoryId}
	}

	tags := make([]*shared.Tag, 0, len(tagIds))
	for _, tagId := range tagIds {
		tags = append(tags, &shared.Tag{Id: tagId})
	}

	return &shared.Entry{
		Id:       id,
		Title:    title,
		Content:  content,
		Category: category,
		Tags:     tags,
	}
}

func entryIds(entries []*shared.Entry) []int {
	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.Id)
	}
	return ids
}

func equalIds(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	entries := []*shared.Entry{
		makeEntry(1, "Category theory", "abstract nonsense", 1, 10),
		makeEntry(2, "Dog breeds", "canines of the world", 2, 20),
		makeEntry(3, "Concatenation", "joining strings", 1, 10, 20),
	}

	tests := []struct {
		name  string
		state types.FilterState
		want  []int
	}{
		{"empty state returns all in order", types.FilterState{}, []int{1, 2, 3}},
		{"page alone filters nothing", types.FilterState{Page: 4}, []int{1, 2, 3}},
		{"case-insensitive substring on title", types.FilterState{SearchText: "cat"}, []int{1, 3}},
		{"substring matches content too", types.FilterState{SearchText: "canines"}, []int{2}},
		{"search with no match", types.FilterState{SearchText: "zebra"}, []int{}},
		{"category filter", types.FilterState{CategoryId: 1}, []int{1, 3}},
		{"tag filter", types.FilterState{TagId: 20}, []int{2, 3}},
		{"predicates conjoin", types.FilterState{SearchText: "cat", TagId: 20}, []int{3}},
		{"unknown category filters everything", types.FilterState{CategoryId: 99}, []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Filter(entries, test.state)
			if !equalIds(entryIds(got), test.want) {
				t.Errorf("Filter() = %v; want %v", entryIds(got), test.want)
			}
		})
	}
}

func TestFilterIsPure(t *testing.T) {
	entries := []*shared.Entry{
		makeEntry(1, "Category theory", "abstract nonsense", 1, 10),
		makeEntry(2, "Dog breeds", "canines of the world", 2, 20),
	}
	state := types.FilterState{SearchText: "cat"}

	first := Filter(entries, state)
	second := Filter(entries, state)

	if !equalIds(entryIds(first), entryIds(second)) {
		t.Errorf("repeated Filter() calls disagree: %v vs %v", entryIds(first), entryIds(second))
	}

	if entries[0].Title != "Category theory" || entries[1].Id != 2 {
		t.Error("Filter() mutated its input")
	}
}

func TestFilterNilCategoryEntry(t *testing.T) {
	entries := []*shared.Entry{
		makeEntry(1, "Uncategorized", "no category here", 0),
	}

	got := Filter(entries, types.FilterState{CategoryId: 1})
	if len(got) != 0 {
		t.Errorf("entry without a category matched a category filter")
	}
}
