// Package listing implements the search/filter/paginate step every
// admin list endpoint runs over its collection.
package listing

import "strings"

// Page is one page of a filtered collection. TotalPages is at least 1,
// even when Items is empty, so clients always have a valid page range.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

const DefaultPageSize = 10

// Paginate slices items for a 1-indexed page, clamping page into
// [1, totalPages] so a stale page number from a changed filter can
// never produce an out-of-range slice.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}

// Filter returns the items matching pred, preserving order.
func Filter[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// MatchesSearch reports whether the search term is a case-insensitive
// substring of any of the fields. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesFilter reports whether value equals the selected filter.
// Empty and "all" mean the filter is inactive.
func MatchesFilter(selected, value string) bool {
	return selected == "" || selected == "all" || selected == value
}
