package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/blog-crud-api/internal/models"
	"github.com/google/uuid"
)

// FieldError represents a single validation error on a request field
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator applies the declared write-payload rules before requests reach
// the service layer
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCommentRequest validates a comment write payload.
// Content length bounds apply after trimming surrounding whitespace.
func (v *Validator) ValidateCommentRequest(req *models.CommentRequest) []FieldError {
	var errors []FieldError

	// Validate post_id. The offending value is echoed back except when the
	// field is missing entirely.
	if req.PostID == "" {
		errors = append(errors, FieldError{Field: "post_id", Message: "post_id is required"})
	} else if req.PostID == uuid.Nil.String() {
		errors = append(errors, FieldError{Field: "post_id", Message: "post_id is required", Value: req.PostID})
	} else if _, err := uuid.Parse(req.PostID); err != nil {
		errors = append(errors, FieldError{Field: "post_id", Message: "invalid UUID format", Value: req.PostID})
	}

	// Validate content. Length bounds count characters, not bytes, so
	// multi-byte content is measured the way callers see it. Over-limit
	// content is not echoed back.
	content := strings.TrimSpace(req.Content)
	switch {
	case content == "":
		errors = append(errors, FieldError{Field: "content", Message: "content must not be empty"})
	case utf8.RuneCountInString(content) < models.MinCommentLength:
		errors = append(errors, FieldError{
			Field:   "content",
			Message: fmt.Sprintf("content is too short, minimum is %d characters", models.MinCommentLength),
			Value:   req.Content,
		})
	case utf8.RuneCountInString(content) > models.MaxCommentLength:
		errors = append(errors, FieldError{
			Field:   "content",
			Message: fmt.Sprintf("content limit of %d characters exceeded", models.MaxCommentLength),
		})
	}

	return errors
}

// ValidatePostRequest validates a post write payload
func (v *Validator) ValidatePostRequest(req *models.PostRequest) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title must not be empty"})
	}

	return errors
}
