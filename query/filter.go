package query

import (
	"strings"

	"pedia-cli/shared"
	"pedia-cli/types"
)

const DefaultPageSize = 10

// Filter derives the visible subset of entries for a filter state. An
// entry passes only if every active predicate matches: case-insensitive
// substring search against title or content, category id equality, and
// tag set membership. Pure: the input slice and its entries are never
// mutated, and order is preserved.
func Filter(entries []*shared.Entry, state types.FilterState) []*shared.Entry {
	if state.IsEmpty() {
		return entries
	}

	search := strings.ToLower(state.SearchText)

	filtered := make([]*shared.Entry, 0, len(entries))
	for _, entry := range entries {
		if search != "" &&
			!strings.Contains(strings.ToLower(entry.Title), search) &&
			!strings.Contains(strings.ToLower(entry.Content), search) {
			continue
		}

		if state.CategoryId != 0 &&
			(entry.Category == nil || entry.Category.Id != state.CategoryId) {
			continue
		}

		if state.TagId != 0 && !entry.HasTag(state.TagId) {
			continue
		}

		filtered = append(filtered, entry)
	}

	return filtered
}

// Page is one slice of a filtered result.
type Page struct {
	Items      []*shared.Entry
	TotalPages int
}

// Paginate slices the filtered entries. A page outside [1, totalPages]
// yields an empty Items slice rather than an error. Callers are expected
// to clamp using TotalPages, but the function degrades safely if they
// don't.
func Paginate(filtered []*shared.Entry, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	if page < 1 || page > totalPages {
		return Page{Items: []*shared.Entry{}, TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{Items: filtered[start:end], TotalPages: totalPages}
}

// VisiblePages is the page-number window shown by listing views: width 5,
// centered on the current page with a left bias at the edges.
func VisiblePages(page, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	start := page - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > totalPages {
		end = totalPages
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
