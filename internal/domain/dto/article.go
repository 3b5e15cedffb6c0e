package dto

import (
	"time"

	"article-api/internal/domain/models"
)

// Article is the external representation of an article.
// Validation tags are checked by the HTTP layer before the service is called.
type Article struct {
	ID             int64      `json:"id,omitempty"`
	Title          string     `json:"title" validate:"notblank,max=50"`
	Author         string     `json:"author" validate:"notblank,max=50"`
	Content        string     `json:"content" validate:"notblank,max=100"`
	PublishingDate *time.Time `json:"publishingDate" validate:"required"`
}

func FromModel(a models.Article) Article {
	date := a.PublishingDate

	return Article{
		ID:             a.ID,
		Title:          a.Title,
		Author:         a.Author,
		Content:        a.Content,
		PublishingDate: &date,
	}
}

func (a Article) ToModel() models.Article {
	art := models.Article{
		ID:      a.ID,
		Title:   a.Title,
		Author:  a.Author,
		Content: a.Content,
	}
	if a.PublishingDate != nil {
		art.PublishingDate = *a.PublishingDate
	}

	return art
}
