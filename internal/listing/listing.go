// Package listing implements the shared list-screen behavior: a client-side
// case-insensitive substring filter over each entity's display fields,
// followed by fixed-size pagination. Every list page re-applies it to a
// freshly fetched collection, so changing the filter naturally lands back on
// a valid page.
package listing

import (
	"strings"
)

// DefaultPageSize matches the original screens.
const DefaultPageSize = 10

// Page is one page of a filtered collection.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageCount  int
	Total      int
}

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool { return p.PageNumber > 1 }

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.PageNumber < p.PageCount }

// Apply filters items by search and returns the requested page. fields
// yields the display fields the filter matches against; the match is a
// case-insensitive substring test over any of them. An out-of-range page is
// clamped, so a filter change that shrinks the result set falls back to a
// valid page rather than showing an empty one.
func Apply[T any](items []T, fields func(T) []string, search string, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(items, fields, search)

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Items:      filtered[start:end],
		PageNumber: page,
		PageCount:  pageCount,
		Total:      len(filtered),
	}
}

// Filter keeps items whose display fields contain search, ignoring case.
// An empty search keeps everything.
func Filter[T any](items []T, fields func(T) []string, search string) []T {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return items
	}

	var filtered []T
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// ActiveLabel is the filterable text form of the active flag, so searching
// "inactive" works the way the original screens did.
func ActiveLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
