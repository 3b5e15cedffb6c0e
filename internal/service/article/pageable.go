package article

import "article-api/internal/domain/models"

// Pageable normalizes raw list parameters. nil or negative numbers and a nil
// or empty sort field take the defaults, nil ascending means descending.
// Page size has no upper bound.
func Pageable(pageNumber, pageSize *int, sortField *string, ascending *bool) models.PageRequest {
	p := models.PageRequest{
		PageNumber: models.DefaultPageNumber,
		PageSize:   models.DefaultPageSize,
		SortField:  models.DefaultSortField,
	}

	if pageNumber != nil && *pageNumber >= 0 {
		p.PageNumber = *pageNumber
	}
	if pageSize != nil && *pageSize >= 0 {
		p.PageSize = *pageSize
	}
	if sortField != nil && *sortField != "" {
		p.SortField = *sortField
	}
	if ascending != nil {
		p.Ascending = *ascending
	}

	return p
}
