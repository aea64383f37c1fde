package models

// Page is a 0-based slice of a larger result set.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	PageCount   int   `json:"page_count"`
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
	HasMore     bool  `json:"has_more"`
}

func NewPage[T any](items []T, total int64, page, size int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pageCount := 0
	if size > 0 {
		pageCount = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Items:       items,
		Total:       total,
		PageCount:   pageCount,
		CurrentPage: page,
		Size:        size,
		HasMore:     page+1 < pageCount,
	}
}
