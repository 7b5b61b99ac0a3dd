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

// PostHandler handles post endpoints
type PostHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services:  services,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "post").Logger(),
	}
}

// List handles GET /api/post
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.services.Post.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/post/:id
func (h *PostHandler) Get(c *gin.Context) {
	id := c.Param("id")

	post, err := h.services.Post.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("post with id %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/post
func (h *PostHandler) Create(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrors := h.validator.ValidatePostRequest(&req); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Info().Str("post_id", post.ID).Msg("Post created via API")
	c.JSON(http.StatusOK, gin.H{
		"id":      post.ID,
		"message": "post created successfully",
	})
}

// Update handles PUT /api/post/:id
func (h *PostHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrors := h.validator.ValidatePostRequest(&req); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	updated, err := h.services.Post.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !updated {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("post with id %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post updated successfully"})
}

// Delete handles DELETE /api/post/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.services.Post.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("post with id %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}
