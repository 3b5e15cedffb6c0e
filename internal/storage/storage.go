package storage

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrUserNotFound     = errors.New("user not found")
)

var sortColumns = map[string]string{
	"id":             "id",
	"title":          "title",
	"author":         "author",
	"content":        "content",
	"publishingDate": "publishing_date",
}

// SortColumn maps an article field name to its column. Only the fields listed
// above are sortable, anything else yields ErrInvalidSortField.
func SortColumn(field string) (string, error) {
	col, ok := sortColumns[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}
	return col, nil
}

// OrderBy builds the ORDER BY clause for a page query. id breaks ties so that
// pages stay stable across requests.
func OrderBy(field string, ascending bool) (string, error) {
	col, err := SortColumn(field)
	if err != nil {
		return "", err
	}

	dir := "DESC"
	if ascending {
		dir = "ASC"
	}

	if col == "id" {
		return fmt.Sprintf("id %s", dir), nil
	}
	return fmt.Sprintf("%s %s, id %s", col, dir, dir), nil
}
