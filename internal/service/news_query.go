package service

import (
	"context"
	"fmt"

	"github.com/news-share-api/internal/config"
	"github.com/news-share-api/internal/models"
	"github.com/news-share-api/internal/repository"
	"github.com/rs/zerolog"
)

// queryService is the concrete implementation of NewsQueryService
type queryService struct {
	repos        *repository.Repositories
	defaultLimit int
	log          zerolog.Logger
}

func newQueryService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) NewsQueryService {
	return &queryService{
		repos:        repos,
		defaultLimit: cfg.Pagination.DefaultLimit,
		log:          log.With().Str("service", "news_query").Logger(),
	}
}

// ListRecent returns one page of articles, newest first, wrapped in the
// pagination envelope. A zero limit or offset counts as absent and falls
// back to the defaults, so callers cannot request a zero-sized page.
func (s *queryService) ListRecent(ctx context.Context, limit, offset int, baseURL string) (*models.NewsPage, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	results, err := s.repos.Article.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	total, err := s.repos.Article.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	page := &models.NewsPage{
		Limit:          limit,
		Offset:         offset,
		TotalCountNews: total,
		Results:        results,
	}

	if next := offset + limit; next < total {
		url := fmt.Sprintf("%s?limit=%d&offset=%d", baseURL, limit, next)
		page.NextURL = &url
	}
	if previous := offset - limit; previous >= 0 {
		url := fmt.Sprintf("%s?limit=%d&offset=%d", baseURL, limit, previous)
		page.PreviousURL = &url
	}

	return page, nil
}

// MostRecent returns the single newest article
func (s *queryService) MostRecent(ctx context.Context) (*models.News, error) {
	news, err := s.repos.Article.MostRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch most recent article: %w", err)
	}
	if news == nil {
		return nil, ErrNotFound
	}
	return news, nil
}

// GetByID returns one projected article. An article whose author
// reference no longer resolves is reported as ErrAuthorNotFound rather
// than projected with a dangling reference.
func (s *queryService) GetByID(ctx context.Context, id string) (*models.News, error) {
	news, err := s.repos.Article.GetNewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
	}
	if news == nil {
		article, err := s.repos.Article.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
		}
		if article != nil {
			exists, err := s.repos.User.Exists(ctx, article.AuthorID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve author %s: %w", article.AuthorID, err)
			}
			if !exists {
				s.log.Warn().Str("article_id", id).Str("author_id", article.AuthorID).
					Msg("Article has a dangling author reference")
				return nil, ErrAuthorNotFound
			}
			// Author resolved on the second look: the projection raced
			// with a concurrent delete, report the article as gone
		}
		return nil, ErrNotFound
	}
	return news, nil
}

// SearchByTitle returns all articles matching the text as a
// case-insensitive substring; empty text matches everything
func (s *queryService) SearchByTitle(ctx context.Context, title string) ([]models.News, error) {
	results, err := s.repos.Article.SearchByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return results, nil
}

// ListByAuthor returns all articles by one author, newest first
func (s *queryService) ListByAuthor(ctx context.Context, userID string) ([]models.News, error) {
	results, err := s.repos.Article.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles by author: %w", err)
	}
	return results, nil
}

// ListComments returns an article's comments in insertion order
func (s *queryService) ListComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", articleID, err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	comments, err := s.repos.Comment.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// GetCount returns the row count for a resource, used by /metrics
func (s *queryService) GetCount(ctx context.Context, resource string) (int, error) {
	switch resource {
	case "users":
		return s.repos.User.Count(ctx)
	case "articles":
		return s.repos.Article.Count(ctx)
	case "comments":
		return s.repos.Comment.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
}
