package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/news-share-api/internal/models"
	"github.com/news-share-api/internal/service"
	"github.com/news-share-api/internal/validation"
	"github.com/rs/zerolog"
)

// NewsHandler handles the news endpoints
type NewsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(services *service.Services, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		services: services,
		log:      log.With().Str("handler", "news").Logger(),
	}
}

// handleError maps domain errors to the normalized status taxonomy:
// 400 for validation and not-found, 500 for store failures. 401/403 are
// produced before the services are reached.
func (h *NewsHandler) handleError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "News not found"})
	case errors.Is(err, service.ErrAuthorNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "News author not found"})
	case errors.Is(err, service.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
	default:
		h.log.Error().Err(err).Msg(internalMsg)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalMsg})
	}
}

// newsID validates the :id path parameter. Identifiers are UUIDs, so a
// malformed id can never match a record and is reported as not found
// without touching the store.
func (h *NewsHandler) newsID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "News not found"})
		return "", false
	}
	return id, true
}

// ListNews handles GET /v1/news?limit&offset
func (h *NewsHandler) ListNews(c *gin.Context) {
	ctx := c.Request.Context()

	// Unparseable or absent values fall back to the service defaults
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	page, err := h.services.Query.ListRecent(ctx, limit, offset, c.Request.URL.Path)
	if err != nil {
		h.handleError(c, err, "Failed to list news")
		return
	}

	c.JSON(http.StatusOK, page)
}

// TopNews handles GET /v1/news/top
func (h *NewsHandler) TopNews(c *gin.Context) {
	news, err := h.services.Query.MostRecent(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to fetch top news")
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": news})
}

// GetNews handles GET /v1/news/:id
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	news, err := h.services.Query.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to fetch news")
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": news})
}

// SearchNews handles GET /v1/news/search?title=
func (h *NewsHandler) SearchNews(c *gin.Context) {
	results, err := h.services.Query.SearchByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		h.handleError(c, err, "Failed to search news")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// MyNews handles GET /v1/news/mine
func (h *NewsHandler) MyNews(c *gin.Context) {
	results, err := h.services.Query.ListByAuthor(c.Request.Context(), requesterID(c))
	if err != nil {
		h.handleError(c, err, "Failed to list your news")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListComments handles GET /v1/news/:id/comments
func (h *NewsHandler) ListComments(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	comments, err := h.services.Query.ListComments(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": comments})
}

// CreateNews handles POST /v1/news
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req validation.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if fieldErrs := validation.ValidateCreate(&req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid news payload", "errors": fieldErrs})
		return
	}

	article, err := h.services.Mutation.Create(
		c.Request.Context(), req.Title, req.Description, req.Banner, requesterID(c),
	)
	if err != nil {
		h.handleError(c, err, "Failed to create news")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "News created successfully", "id": article.ID})
}

// UpdateNews handles PUT /v1/news/:id
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	var update models.ArticleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if fieldErrs := validation.ValidateUpdate(&update); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid news payload", "errors": fieldErrs})
		return
	}

	article, err := h.services.Mutation.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to update news")
		return
	}
	if !article.IsOwnedBy(requesterID(c)) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You cannot update this news"})
		return
	}

	if err := h.services.Mutation.Update(c.Request.Context(), id, &update); err != nil {
		h.handleError(c, err, "Failed to update news")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News updated successfully"})
}

// DeleteNews handles DELETE /v1/news/:id
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	article, err := h.services.Mutation.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to delete news")
		return
	}
	if !article.IsOwnedBy(requesterID(c)) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You cannot delete this news"})
		return
	}

	if err := h.services.Mutation.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Failed to delete news")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

// ToggleLike handles PUT /v1/news/:id/like
func (h *NewsHandler) ToggleLike(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	liked, err := h.services.Mutation.ToggleLike(c.Request.Context(), id, requesterID(c))
	if err != nil {
		h.handleError(c, err, "Failed to toggle like")
		return
	}

	message := "Like removed"
	if liked {
		message = "Like added"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
