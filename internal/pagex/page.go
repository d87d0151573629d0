// Package pagex provides the page envelope used by list and search
// responses.
package pagex

// Page is a point-in-time slice of a result set. Page numbers are 1-based.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// New builds a page envelope over the already-sliced items.
func New[T any](items []T, total, page, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
}

// Slice cuts the requested page out of items. Out-of-range pages, including
// page or pageSize below 1, yield an empty slice, not an error.
func Slice[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
