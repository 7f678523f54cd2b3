package validation

import (
	"regexp"
	"strings"

	"github.com/news-share-api/internal/models"
)

var urlRegex = regexp.MustCompile(`^https?://[^\s]+$`)

// MaxTitleLength caps article titles
const MaxTitleLength = 200

// FieldError represents a single request validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateRequest is the payload for creating an article
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
}

// ValidateCreate checks a creation payload: all fields are required and
// the banner must be an http(s) URL
func ValidateCreate(req *CreateRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(req.Title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title is too long"})
	}

	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}

	if strings.TrimSpace(req.Banner) == "" {
		errs = append(errs, FieldError{Field: "banner", Message: "banner is required"})
	} else if !urlRegex.MatchString(req.Banner) {
		errs = append(errs, FieldError{Field: "banner", Message: "banner must be a valid URL"})
	}

	return errs
}

// ValidateUpdate checks a partial update: at least one field must be
// supplied, and supplied fields follow the same shape rules as creation
func ValidateUpdate(update *models.ArticleUpdate) []FieldError {
	if update.Empty() {
		return []FieldError{{Field: "body", Message: "at least one field is required"}}
	}

	var errs []FieldError

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			errs = append(errs, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*update.Title) > MaxTitleLength {
			errs = append(errs, FieldError{Field: "title", Message: "title is too long"})
		}
	}

	if update.Description != nil && strings.TrimSpace(*update.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description cannot be empty"})
	}

	if update.Banner != nil && !urlRegex.MatchString(*update.Banner) {
		errs = append(errs, FieldError{Field: "banner", Message: "banner must be a valid URL"})
	}

	return errs
}
