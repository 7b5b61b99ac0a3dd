package mocks

import (
	"context"

	"github.com/blog-crud-api/internal/models"
)

// MockPostRepository is a map-backed mock implementation of PostRepository
type MockPostRepository struct {
	Posts map[string]*models.Post
	Err   error // returned by every operation when set
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{Posts: make(map[string]*models.Post)}
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	posts := make([]*models.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Posts[id], nil
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *post
	m.Posts[post.ID] = &stored
	return nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *post
	m.Posts[post.ID] = &stored
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Posts, id)
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Posts), nil
}

// MockCommentRepository is a map-backed mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[string]*models.Comment
	Err      error // returned by every operation when set
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepository) GetAll(ctx context.Context) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comments := make([]*models.Comment, 0, len(m.Comments))
	for _, c := range m.Comments {
		comments = append(comments, c)
	}
	return comments, nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comments[id], nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	return nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Comments), nil
}
