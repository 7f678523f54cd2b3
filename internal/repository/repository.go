package repository

import (
	"context"

	"github.com/news-share-api/internal/database"
	"github.com/news-share-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, id string, update *models.ArticleUpdate) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetNewsByID(ctx context.Context, id string) (*models.News, error)
	ListRecent(ctx context.Context, limit, offset int) ([]models.News, error)
	MostRecent(ctx context.Context) (*models.News, error)
	SearchByTitle(ctx context.Context, title string) ([]models.News, error)
	ListByAuthor(ctx context.Context, userID string) ([]models.News, error)
	Count(ctx context.Context) (int, error)
	ToggleLike(ctx context.Context, articleID, userID string) (liked bool, found bool, err error)
}

// UserRepository defines the interface for user lookups. Users are owned
// by the auth service; this API only resolves author references.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment reads
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	User    UserRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		User:    NewUserRepo(db),
		Comment: NewCommentRepo(db),
	}
}
