package mocks

import (
	"context"
	"strings"

	"github.com/news-share-api/internal/models"
)

// MockArticleRepository is an in-memory implementation of
// repository.ArticleRepository. Insertion order stands in for creation
// time: later inserts are "more recent".
type MockArticleRepository struct {
	Articles map[string]*models.Article
	Order    []string            // article ids in insertion order
	Likes    map[string][]string // article id -> liking user ids, in like order
	Comments map[string][]string // article id -> comment ids, in insertion order

	// UserNames resolves author references during projection; an author
	// missing here behaves like a dangling reference
	UserNames map[string]string

	// Err, when set, is returned by every operation
	Err error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:  make(map[string]*models.Article),
		Likes:     make(map[string][]string),
		Comments:  make(map[string][]string),
		UserNames: make(map[string]string),
	}
}

func (m *MockArticleRepository) project(a *models.Article) (*models.News, bool) {
	userName, ok := m.UserNames[a.AuthorID]
	if !ok {
		return nil, false
	}

	likes := m.Likes[a.ID]
	if likes == nil {
		likes = []string{}
	}
	comments := m.Comments[a.ID]
	if comments == nil {
		comments = []string{}
	}

	return &models.News{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Banner:      a.Banner,
		Likes:       likes,
		Comments:    comments,
		UserName:    userName,
	}, true
}

// newestFirst returns all projectable articles, most recent first
func (m *MockArticleRepository) newestFirst() []models.News {
	results := []models.News{}
	for i := len(m.Order) - 1; i >= 0; i-- {
		article, ok := m.Articles[m.Order[i]]
		if !ok {
			continue
		}
		if news, ok := m.project(article); ok {
			results = append(results, *news)
		}
	}
	return results
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.Err != nil {
		return m.Err
	}
	m.Articles[article.ID] = article
	m.Order = append(m.Order, article.ID)
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id string, update *models.ArticleUpdate) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return false, nil
	}
	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Description != nil {
		article.Description = *update.Description
	}
	if update.Banner != nil {
		article.Banner = *update.Banner
	}
	return true, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	delete(m.Likes, id)
	delete(m.Comments, id)
	return true, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetNewsByID(ctx context.Context, id string) (*models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	news, ok := m.project(article)
	if !ok {
		return nil, nil
	}
	return news, nil
}

func (m *MockArticleRepository) ListRecent(ctx context.Context, limit, offset int) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	all := m.newestFirst()
	if offset >= len(all) {
		return []models.News{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MockArticleRepository) MostRecent(ctx context.Context) (*models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	all := m.newestFirst()
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

func (m *MockArticleRepository) SearchByTitle(ctx context.Context, title string) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	results := []models.News{}
	for _, news := range m.newestFirst() {
		if containsFold(news.Title, title) {
			results = append(results, news)
		}
	}
	return results, nil
}

func (m *MockArticleRepository) ListByAuthor(ctx context.Context, userID string) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	results := []models.News{}
	for i := len(m.Order) - 1; i >= 0; i-- {
		article, ok := m.Articles[m.Order[i]]
		if !ok || article.AuthorID != userID {
			continue
		}
		if news, ok := m.project(article); ok {
			results = append(results, *news)
		}
	}
	return results, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Articles), nil
}

func (m *MockArticleRepository) ToggleLike(ctx context.Context, articleID, userID string) (bool, bool, error) {
	if m.Err != nil {
		return false, false, m.Err
	}
	if _, ok := m.Articles[articleID]; !ok {
		return false, false, nil
	}
	likes := m.Likes[articleID]
	for i, id := range likes {
		if id == userID {
			m.Likes[articleID] = append(likes[:i], likes[i+1:]...)
			return false, true, nil
		}
	}
	m.Likes[articleID] = append(likes, userID)
	return true, true, nil
}

// MockUserRepository is an in-memory implementation of
// repository.UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Users[id]
	return exists, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Users), nil
}

// MockCommentRepository is an in-memory implementation of
// repository.CommentRepository
type MockCommentRepository struct {
	ByArticle map[string][]models.Comment
	Err       error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{ByArticle: make(map[string][]models.Comment)}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comments := m.ByArticle[articleID]
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	total := 0
	for _, comments := range m.ByArticle {
		total += len(comments)
	}
	return total, nil
}

// containsFold reports whether s contains substr case-insensitively
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
