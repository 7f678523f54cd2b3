package service

import (
	"context"

	"github.com/news-share-api/internal/config"
	"github.com/news-share-api/internal/models"
	"github.com/news-share-api/internal/repository"
	"github.com/rs/zerolog"
)

// NewsQueryService defines the read-side operations over articles
type NewsQueryService interface {
	ListRecent(ctx context.Context, limit, offset int, baseURL string) (*models.NewsPage, error)
	MostRecent(ctx context.Context) (*models.News, error)
	GetByID(ctx context.Context, id string) (*models.News, error)
	SearchByTitle(ctx context.Context, title string) ([]models.News, error)
	ListByAuthor(ctx context.Context, userID string) ([]models.News, error)
	ListComments(ctx context.Context, articleID string) ([]models.Comment, error)
	GetCount(ctx context.Context, resource string) (int, error)
}

// NewsMutationService defines the write-side operations over articles.
// Ownership is enforced by the handlers before any call lands here.
type NewsMutationService interface {
	Create(ctx context.Context, title, description, banner, authorID string) (*models.Article, error)
	Update(ctx context.Context, id string, update *models.ArticleUpdate) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (bool, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
}

// Services holds all service interfaces
type Services struct {
	Query    NewsQueryService
	Mutation NewsMutationService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Query:    newQueryService(repos, cfg, log),
		Mutation: newMutationService(repos, log),
	}
}
