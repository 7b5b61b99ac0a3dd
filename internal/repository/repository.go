package repository

import (
	"context"

	"github.com/blog-crud-api/internal/database"
	"github.com/blog-crud-api/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	GetAll(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetAll(ctx context.Context) ([]*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post    PostRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Post:    NewPostRepo(db),
		Comment: NewCommentRepo(db),
	}
}
