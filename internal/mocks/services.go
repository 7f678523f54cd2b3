package mocks

import (
	"context"

	"github.com/news-share-api/internal/models"
	"github.com/news-share-api/internal/service"
)

// MockQueryService is a mock implementation of service.NewsQueryService
type MockQueryService struct {
	Pages    map[string]*models.NewsPage // keyed by baseURL
	News     map[string]*models.News     // keyed by article id
	Top      *models.News
	Results  []models.News
	Comments map[string][]models.Comment
	Counts   map[string]int
	Err      error
}

func NewMockQueryService() *MockQueryService {
	return &MockQueryService{
		Pages:    make(map[string]*models.NewsPage),
		News:     make(map[string]*models.News),
		Comments: make(map[string][]models.Comment),
		Counts:   make(map[string]int),
	}
}

func (m *MockQueryService) ListRecent(ctx context.Context, limit, offset int, baseURL string) (*models.NewsPage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if page, ok := m.Pages[baseURL]; ok {
		return page, nil
	}
	return &models.NewsPage{Limit: limit, Offset: offset, Results: []models.News{}}, nil
}

func (m *MockQueryService) MostRecent(ctx context.Context) (*models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Top == nil {
		return nil, service.ErrNotFound
	}
	return m.Top, nil
}

func (m *MockQueryService) GetByID(ctx context.Context, id string) (*models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	news, ok := m.News[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return news, nil
}

func (m *MockQueryService) SearchByTitle(ctx context.Context, title string) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	results := []models.News{}
	for _, news := range m.Results {
		if containsFold(news.Title, title) {
			results = append(results, news)
		}
	}
	return results, nil
}

func (m *MockQueryService) ListByAuthor(ctx context.Context, userID string) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

func (m *MockQueryService) ListComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comments, ok := m.Comments[articleID]
	if !ok {
		return nil, service.ErrNotFound
	}
	return comments, nil
}

func (m *MockQueryService) GetCount(ctx context.Context, resource string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Counts[resource], nil
}

// MockMutationService is a mock implementation of service.NewsMutationService
type MockMutationService struct {
	Articles    map[string]*models.Article
	Liked       map[string]bool // article id -> current like state per toggle
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	Err         error
}

func NewMockMutationService() *MockMutationService {
	return &MockMutationService{
		Articles: make(map[string]*models.Article),
		Liked:    make(map[string]bool),
	}
}

func (m *MockMutationService) Create(ctx context.Context, title, description, banner, authorID string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.CreateCalls++
	article := &models.Article{
		ID:          "article-created",
		Title:       title,
		Description: description,
		Banner:      banner,
		AuthorID:    authorID,
	}
	m.Articles[article.ID] = article
	return article, nil
}

func (m *MockMutationService) Update(ctx context.Context, id string, update *models.ArticleUpdate) error {
	if m.Err != nil {
		return m.Err
	}
	if update.Empty() {
		return service.ErrEmptyUpdate
	}
	if _, ok := m.Articles[id]; !ok {
		return service.ErrNotFound
	}
	m.UpdateCalls++
	return nil
}

func (m *MockMutationService) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return service.ErrNotFound
	}
	delete(m.Articles, id)
	m.DeleteCalls++
	return nil
}

func (m *MockMutationService) ToggleLike(ctx context.Context, id, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return false, service.ErrNotFound
	}
	m.Liked[id] = !m.Liked[id]
	return m.Liked[id], nil
}

func (m *MockMutationService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return article, nil
}
