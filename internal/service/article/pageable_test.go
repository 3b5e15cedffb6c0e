package article

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"article-api/internal/domain/models"
)

func TestPageable(t *testing.T) {
	cases := []struct {
		name       string
		pageNumber *int
		pageSize   *int
		sortField  *string
		ascending  *bool
		want       models.PageRequest
	}{
		{
			name: "all nil",
			want: models.PageRequest{PageNumber: 0, PageSize: 10, SortField: "publishingDate", Ascending: false},
		},
		{
			name:       "negative numbers",
			pageNumber: ptr(-1),
			pageSize:   ptr(-20),
			want:       models.PageRequest{PageNumber: 0, PageSize: 10, SortField: "publishingDate"},
		},
		{
			name:      "empty sort field",
			sortField: ptr(""),
			want:      models.PageRequest{PageNumber: 0, PageSize: 10, SortField: "publishingDate"},
		},
		{
			name:       "explicit values",
			pageNumber: ptr(3),
			pageSize:   ptr(25),
			sortField:  ptr("title"),
			ascending:  ptr(true),
			want:       models.PageRequest{PageNumber: 3, PageSize: 25, SortField: "title", Ascending: true},
		},
		{
			name:     "zero page size kept",
			pageSize: ptr(0),
			want:     models.PageRequest{PageNumber: 0, PageSize: 0, SortField: "publishingDate"},
		},
		{
			name:     "no upper bound",
			pageSize: ptr(100000),
			want:     models.PageRequest{PageNumber: 0, PageSize: 100000, SortField: "publishingDate"},
		},
		{
			name:      "explicit descending",
			ascending: ptr(false),
			want:      models.PageRequest{PageNumber: 0, PageSize: 10, SortField: "publishingDate"},
		},
		{
			name:      "unknown sort field passed through",
			sortField: ptr("rating"),
			want:      models.PageRequest{PageNumber: 0, PageSize: 10, SortField: "rating"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pageable(tc.pageNumber, tc.pageSize, tc.sortField, tc.ascending)

			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got.PageNumber, 0)
			assert.GreaterOrEqual(t, got.PageSize, 0)
			assert.NotEmpty(t, got.SortField)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	cases := []struct {
		name string
		p    models.PageRequest
		want int64
	}{
		{name: "defaults", p: Pageable(nil, nil, nil, nil), want: 0},
		{name: "regular", p: Pageable(ptr(2), ptr(25), nil, nil), want: 50},
		{name: "zero page size", p: Pageable(ptr(math.MaxInt), ptr(0), nil, nil), want: 0},
		{name: "largest exact", p: Pageable(ptr(math.MaxInt/10), ptr(10), nil, nil), want: math.MaxInt64 / 10 * 10},
		{name: "saturates", p: Pageable(ptr(math.MaxInt/5), ptr(10), nil, nil), want: math.MaxInt64},
		{name: "both huge", p: Pageable(ptr(math.MaxInt), ptr(math.MaxInt), nil, nil), want: math.MaxInt64},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Offset())
		})
	}
}
