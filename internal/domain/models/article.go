package models

import "time"

// Article is a persisted article record. ID is assigned by the store.
type Article struct {
	ID             int64
	Title          string
	Author         string
	Content        string
	PublishingDate time.Time
}
