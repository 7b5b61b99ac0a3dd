package api

import (
	"fmt"
	"net/http"

	"github.com/blog-crud-api/internal/models"
	"github.com/blog-crud-api/internal/service"
	"github.com/blog-crud-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// defaultAuthor is used when the caller supplies no identity.
// Placeholder until real authentication is wired in.
const defaultAuthor = "anonymous"

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services:  services,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /api/comment
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.services.Comment.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Get handles GET /api/comment/:id
func (h *CommentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	comment, err := h.services.Comment.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("comment with id %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Create handles POST /api/comment
func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrors := h.validator.ValidateCommentRequest(&req); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), &req, callerIdentity(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Info().
		Str("comment_id", comment.ID).
		Str("post_id", comment.PostID).
		Msg("Comment created via API")

	c.JSON(http.StatusCreated, gin.H{
		"id":      comment.ID,
		"message": "comment created successfully",
	})
}

// Update handles PUT /api/comment/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrors := h.validator.ValidateCommentRequest(&req); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	updated, err := h.services.Comment.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("comment with id %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment updated successfully"})
}

// Delete handles DELETE /api/comment/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.services.Comment.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("comment with id %s not found", id)})
		return
	}

	c.Status(http.StatusNoContent)
}

// callerIdentity extracts the author name from the request
func callerIdentity(c *gin.Context) string {
	if author := c.GetHeader("X-Author"); author != "" {
		return author
	}
	return defaultAuthor
}
