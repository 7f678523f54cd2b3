package models

import (
	"time"
)

// Article represents a news post in the system
type Article struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Banner      string    `json:"banner" db:"banner"`
	AuthorID    string    `json:"author_id" db:"author_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsOwnedBy reports whether the given user authored the article.
// Every mutating handler goes through this single predicate.
func (a *Article) IsOwnedBy(userID string) bool {
	return userID != "" && a.AuthorID == userID
}

// News is the read-side projection of an article: the flat shape
// returned by every query endpoint, with the author resolved to a
// display name and the like/comment id sets aggregated.
type News struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Banner      string   `json:"banner"`
	Likes       []string `json:"likes"`
	Comments    []string `json:"comments"`
	UserName    string   `json:"userName"`
}

// NewsPage is the envelope returned by the paginated listing
type NewsPage struct {
	NextURL        *string `json:"nextUrl"`
	PreviousURL    *string `json:"previousUrl"`
	Limit          int     `json:"limit"`
	Offset         int     `json:"offset"`
	TotalCountNews int     `json:"totalCountNews"`
	Results        []News  `json:"results"`
}

// ArticleUpdate carries a partial update; nil fields are left unchanged
type ArticleUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Banner      *string `json:"banner"`
}

// Empty reports whether the update carries no fields at all
func (u *ArticleUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Banner == nil
}
