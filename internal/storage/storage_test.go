package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBy(t *testing.T) {
	cases := []struct {
		field     string
		ascending bool
		want      string
	}{
		{"publishingDate", false, "publishing_date DESC, id DESC"},
		{"publishingDate", true, "publishing_date ASC, id ASC"},
		{"title", true, "title ASC, id ASC"},
		{"id", false, "id DESC"},
	}

	for _, tc := range cases {
		got, err := OrderBy(tc.field, tc.ascending)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestOrderBy_InvalidField(t *testing.T) {
	for _, field := range []string{"", "publishing_date", "name", "title; DROP TABLE articles"} {
		_, err := OrderBy(field, true)
		assert.ErrorIs(t, err, ErrInvalidSortField, field)
	}
}
