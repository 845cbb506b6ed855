// Package pager computes the visible window of a filtered collection.
package pager

// Page is the slice of items visible on one page plus its metadata.
// PageIndex is the effective 1-based index after clamping.
type Page[T any] struct {
	Items      []T
	TotalPages int
	PageIndex  int
}

// Paginate slices items into the 1-based page window pageIndex of size
// pageSize. TotalPages is at least 1 even for an empty collection, and an
// out-of-range pageIndex is clamped into [1, TotalPages] instead of
// erroring. A non-positive pageSize yields everything on a single page.
func Paginate[T any](items []T, pageSize, pageIndex int) Page[T] {
	if pageSize <= 0 {
		return Page[T]{Items: items, TotalPages: 1, PageIndex: 1}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageIndex > totalPages {
		pageIndex = totalPages
	}

	start := (pageIndex - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		TotalPages: totalPages,
		PageIndex:  pageIndex,
	}
}

// NextPage advances by one page, staying put on the last page.
func NextPage(current, totalPages int) int {
	if current >= totalPages {
		return totalPages
	}
	return current + 1
}

// PrevPage goes back one page, staying put on the first page.
func PrevPage(current int) int {
	if current <= 1 {
		return 1
	}
	return current - 1
}
