package models

import "math"

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
	DefaultSortField  = "publishingDate"
)

// PageRequest is a normalized request for one page of records.
type PageRequest struct {
	PageNumber int
	PageSize   int
	SortField  string
	Ascending  bool
}

// Offset is the number of records before the page. It saturates at
// math.MaxInt64 instead of overflowing.
func (p PageRequest) Offset() int64 {
	number, size := int64(p.PageNumber), int64(p.PageSize)
	if size > 0 && number > math.MaxInt64/size {
		return math.MaxInt64
	}
	return number * size
}

// Page is one page of records along with the store's pagination metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
}

// MapPage converts the content of p with fn, keeping order and metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	content := make([]R, 0, len(p.Content))
	for _, v := range p.Content {
		content = append(content, fn(v))
	}

	return Page[R]{
		Content:       content,
		TotalElements: p.TotalElements,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
	}
}
