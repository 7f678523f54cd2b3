package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/news-share-api/internal/api"
	"github.com/news-share-api/internal/config"
	"github.com/news-share-api/internal/mocks"
	"github.com/news-share-api/internal/models"
	"github.com/news-share-api/internal/service"
	"github.com/rs/zerolog"
)

const testSecret = "test-secret"

// well-formed ids for route parameters; identifiers are UUIDs
const (
	knownID   = "11111111-1111-1111-1111-111111111111"
	unknownID = "22222222-2222-2222-2222-222222222222"
)

func setupTestRouter() (*gin.Engine, *mocks.MockQueryService, *mocks.MockMutationService) {
	gin.SetMode(gin.TestMode)

	mockQuery := mocks.NewMockQueryService()
	mockMutation := mocks.NewMockMutationService()

	services := &service.Services{
		Query:    mockQuery,
		Mutation: mockMutation,
	}

	cfg := &config.Config{
		Server:     config.ServerConfig{Port: "8080"},
		Auth:       config.AuthConfig{JWTSecret: testSecret},
		Pagination: config.PaginationConfig{DefaultLimit: 5},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, log)

	return router, mockQuery, mockMutation
}

func makeToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &api.Claims{
		UserID:   userID,
		UserName: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "news-share-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()
	mockQuery.Counts["users"] = 12
	mockQuery.Counts["articles"] = 34
	mockQuery.Counts["comments"] = 56

	w := doRequest(router, "GET", "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	db := response["database"].(map[string]interface{})
	if db["articles"].(float64) != 34 {
		t.Errorf("Expected 34 articles, got %v", db["articles"])
	}
}

func TestMetricsEndpoint_StoreFailure(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()
	mockQuery.Err = errors.New("connection refused")

	w := doRequest(router, "GET", "/metrics", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 when counts fail, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["database"] != nil {
		t.Errorf("Failed metrics must not report counts, got %v", response["database"])
	}
}

func TestListNews(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()

	next := "/v1/news?limit=5&offset=5"
	mockQuery.Pages["/v1/news"] = &models.NewsPage{
		NextURL:        &next,
		Limit:          5,
		Offset:         0,
		TotalCountNews: 8,
		Results: []models.News{
			{ID: knownID, Title: "Breaking News", Likes: []string{}, Comments: []string{}, UserName: "alice"},
		},
	}

	w := doRequest(router, "GET", "/v1/news?limit=5&offset=0", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var page models.NewsPage
	json.Unmarshal(w.Body.Bytes(), &page)

	if page.TotalCountNews != 8 {
		t.Errorf("Expected total 8, got %d", page.TotalCountNews)
	}
	if page.NextURL == nil || *page.NextURL != next {
		t.Errorf("Unexpected nextUrl: %v", page.NextURL)
	}
	if page.PreviousURL != nil {
		t.Errorf("Expected null previousUrl, got %v", *page.PreviousURL)
	}
	if len(page.Results) != 1 || page.Results[0].UserName != "alice" {
		t.Errorf("Unexpected results: %+v", page.Results)
	}
}

func TestGetNews(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()
	mockQuery.News[knownID] = &models.News{
		ID: knownID, Title: "Breaking News", Likes: []string{}, Comments: []string{}, UserName: "alice",
	}

	w := doRequest(router, "GET", "/v1/news/"+knownID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		News models.News `json:"news"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.News.Title != "Breaking News" {
		t.Errorf("Unexpected news: %+v", response.News)
	}
}

func TestGetNews_NotFound(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "GET", "/v1/news/"+unknownID, "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestGetNews_MalformedID(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "GET", "/v1/news/not-a-uuid", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestTopNews(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()

	// Empty store
	w := doRequest(router, "GET", "/v1/news/top", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 on empty store, got %d", w.Code)
	}

	mockQuery.Top = &models.News{ID: knownID, Title: "Latest", Likes: []string{}, Comments: []string{}, UserName: "alice"}

	w = doRequest(router, "GET", "/v1/news/top", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		News models.News `json:"news"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.News.Title != "Latest" {
		t.Errorf("Unexpected news: %+v", response.News)
	}
}

func TestSearchNews(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()
	mockQuery.Results = []models.News{
		{ID: "a", Title: "Breaking News", UserName: "alice"},
		{ID: "b", Title: "Quiet day", UserName: "bob"},
	}

	w := doRequest(router, "GET", "/v1/news/search?title=NeWs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Results []models.News `json:"results"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response.Results) != 1 || response.Results[0].Title != "Breaking News" {
		t.Errorf("Unexpected results: %+v", response.Results)
	}
}

func TestMyNews_RequiresAuth(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "GET", "/v1/news/mine", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}

	w = doRequest(router, "GET", "/v1/news/mine", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 with bad token, got %d", w.Code)
	}
}

func TestMyNews(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()
	mockQuery.Results = []models.News{{ID: "a", Title: "Mine", UserName: "tester"}}

	w := doRequest(router, "GET", "/v1/news/mine", makeToken(t, "user-1"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestCreateNews(t *testing.T) {
	router, _, mockMutation := setupTestRouter()

	body := map[string]string{
		"title":       "Breaking News",
		"description": "Something happened",
		"banner":      "https://cdn.example.com/banner.png",
	}

	// Without a token
	w := doRequest(router, "POST", "/v1/news", "", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	// Authenticated
	w = doRequest(router, "POST", "/v1/news", makeToken(t, "user-1"), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if mockMutation.CreateCalls != 1 {
		t.Errorf("Expected 1 create call, got %d", mockMutation.CreateCalls)
	}

	created := mockMutation.Articles["article-created"]
	if created == nil || created.AuthorID != "user-1" {
		t.Errorf("Author should come from the token, got %+v", created)
	}
}

func TestCreateNews_InvalidPayload(t *testing.T) {
	router, _, mockMutation := setupTestRouter()
	token := makeToken(t, "user-1")

	cases := []map[string]string{
		{"description": "no title", "banner": "https://cdn.example.com/b.png"},
		{"title": "no banner", "description": "d"},
		{"title": "bad banner", "description": "d", "banner": "not a url"},
	}
	for _, body := range cases {
		w := doRequest(router, "POST", "/v1/news", token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for %v, got %d", body, w.Code)
		}
	}
	if mockMutation.CreateCalls != 0 {
		t.Errorf("Invalid payloads must not reach the service, got %d calls", mockMutation.CreateCalls)
	}
}

func TestCreateNews_UnknownAuthor(t *testing.T) {
	router, _, mockMutation := setupTestRouter()
	mockMutation.Err = service.ErrAuthorNotFound

	body := map[string]string{
		"title":       "Breaking News",
		"description": "Something happened",
		"banner":      "https://cdn.example.com/banner.png",
	}

	w := doRequest(router, "POST", "/v1/news", makeToken(t, "ghost"), body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown author, got %d", w.Code)
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["message"] != "News author not found" {
		t.Errorf("Unexpected message: %q", response["message"])
	}
}

func TestUpdateNews_Ownership(t *testing.T) {
	router, _, mockMutation := setupTestRouter()
	mockMutation.Articles[knownID] = &models.Article{ID: knownID, Title: "Original", AuthorID: "owner-1"}

	body := map[string]string{"title": "Hijacked"}

	// A non-author is rejected regardless of payload validity
	w := doRequest(router, "PUT", "/v1/news/"+knownID, makeToken(t, "intruder"), body)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-owner, got %d", w.Code)
	}
	if mockMutation.UpdateCalls != 0 {
		t.Error("Non-owner update must not reach the service")
	}

	// The author succeeds
	w = doRequest(router, "PUT", "/v1/news/"+knownID, makeToken(t, "owner-1"), body)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for owner, got %d: %s", w.Code, w.Body.String())
	}
	if mockMutation.UpdateCalls != 1 {
		t.Errorf("Expected 1 update call, got %d", mockMutation.UpdateCalls)
	}
}

func TestUpdateNews_NoFields(t *testing.T) {
	router, _, mockMutation := setupTestRouter()
	mockMutation.Articles[knownID] = &models.Article{ID: knownID, AuthorID: "owner-1"}

	w := doRequest(router, "PUT", "/v1/news/"+knownID, makeToken(t, "owner-1"), map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for empty update, got %d", w.Code)
	}
	if mockMutation.UpdateCalls != 0 {
		t.Error("Empty update must not reach the service")
	}
}

func TestUpdateNews_NotFound(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "PUT", "/v1/news/"+unknownID, makeToken(t, "owner-1"), map[string]string{"title": "X"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown id, got %d", w.Code)
	}
}

func TestDeleteNews(t *testing.T) {
	router, _, mockMutation := setupTestRouter()
	mockMutation.Articles[knownID] = &models.Article{ID: knownID, AuthorID: "owner-1"}

	// Non-owner
	w := doRequest(router, "DELETE", "/v1/news/"+knownID, makeToken(t, "intruder"), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-owner, got %d", w.Code)
	}

	// Owner
	w = doRequest(router, "DELETE", "/v1/news/"+knownID, makeToken(t, "owner-1"), nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for owner, got %d", w.Code)
	}

	// Unknown id afterwards
	w = doRequest(router, "DELETE", "/v1/news/"+knownID, makeToken(t, "owner-1"), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for deleted id, got %d", w.Code)
	}
}

func TestToggleLike(t *testing.T) {
	router, _, mockMutation := setupTestRouter()
	mockMutation.Articles[knownID] = &models.Article{ID: knownID, AuthorID: "owner-1"}
	token := makeToken(t, "user-9")

	w := doRequest(router, "PUT", "/v1/news/"+knownID+"/like", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["message"] != "Like added" {
		t.Errorf("Expected 'Like added', got %q", response["message"])
	}

	w = doRequest(router, "PUT", "/v1/news/"+knownID+"/like", token, nil)
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["message"] != "Like removed" {
		t.Errorf("Expected 'Like removed', got %q", response["message"])
	}
}

func TestListComments(t *testing.T) {
	router, mockQuery, _ := setupTestRouter()
	mockQuery.Comments[knownID] = []models.Comment{
		{ID: "comment-1", ArticleID: knownID, UserID: "user-2", Body: "First!"},
	}

	w := doRequest(router, "GET", "/v1/news/"+knownID+"/comments", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Results []models.Comment `json:"results"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response.Results) != 1 || response.Results[0].Body != "First!" {
		t.Errorf("Unexpected comments: %+v", response.Results)
	}
}
