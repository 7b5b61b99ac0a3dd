package service

import (
	"context"
	"errors"

	"github.com/blog-crud-api/internal/models"
	"github.com/blog-crud-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrNotFound marks an error as a missing-resource failure. The HTTP layer
// maps it to 404; it must never be inferred from unrelated error types.
var ErrNotFound = errors.New("resource not found")

// PostService defines the interface for post operations
type PostService interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, req *models.PostRequest) (*models.Post, error)
	Update(ctx context.Context, id string, req *models.PostRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	List(ctx context.Context) ([]models.CommentResponse, error)
	GetByID(ctx context.Context, id string) (*models.CommentResponse, error)
	Create(ctx context.Context, req *models.CommentRequest, author string) (*models.CommentResponse, error)
	Update(ctx context.Context, id string, req *models.CommentRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Post    PostService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Post:    newPostService(repos.Post, log),
		Comment: newCommentService(repos.Comment, log),
	}
}
