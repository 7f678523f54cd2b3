package models

import (
	"time"
)

// Comment represents a comment on an article. Comments are append-only
// here; authoring happens in a separate service and articles expose them
// as ordered id lists.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	ArticleID string    `json:"article_id" db:"article_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
