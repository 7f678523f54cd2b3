package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/news-share-api/internal/models"
	"github.com/news-share-api/internal/repository"
	"github.com/rs/zerolog"
)

// mutationService is the concrete implementation of NewsMutationService
type mutationService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newMutationService(repos *repository.Repositories, log zerolog.Logger) NewsMutationService {
	return &mutationService{
		repos: repos,
		log:   log.With().Str("service", "news_mutation").Logger(),
	}
}

// Create inserts a new article with a fresh id and empty like and
// comment sets. The author is set once here and never reassigned; an
// author id that does not resolve to a provisioned user is rejected as
// a domain error rather than surfacing the foreign-key violation.
func (s *mutationService) Create(ctx context.Context, title, description, banner, authorID string) (*models.Article, error) {
	author, err := s.repos.User.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch author %s: %w", authorID, err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	now := time.Now()
	article := &models.Article{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Banner:      banner,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("author_id", authorID).
		Str("author_name", author.UserName).
		Msg("Article created")
	return article, nil
}

// Update applies a partial update; only supplied fields change
func (s *mutationService) Update(ctx context.Context, id string, update *models.ArticleUpdate) error {
	if update.Empty() {
		return ErrEmptyUpdate
	}

	found, err := s.repos.Article.Update(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update article %s: %w", id, err)
	}
	if !found {
		return ErrNotFound
	}

	s.log.Info().Str("article_id", id).Msg("Article updated")
	return nil
}

// Delete removes the article along with its likes and comments
func (s *mutationService) Delete(ctx context.Context, id string) error {
	found, err := s.repos.Article.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", id, err)
	}
	if !found {
		return ErrNotFound
	}

	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// ToggleLike adds the user's like when absent and removes it when
// present, reporting true for "liked". The repository runs the
// read-modify-write in one transaction so concurrent toggles from
// different users cannot lose updates.
func (s *mutationService) ToggleLike(ctx context.Context, id, userID string) (bool, error) {
	liked, found, err := s.repos.Article.ToggleLike(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like on article %s: %w", id, err)
	}
	if !found {
		return false, ErrNotFound
	}

	s.log.Info().Str("article_id", id).Str("user_id", userID).Bool("liked", liked).Msg("Like toggled")
	return liked, nil
}

// GetArticle fetches the raw article row so handlers can run the
// ownership check before mutating
func (s *mutationService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}
