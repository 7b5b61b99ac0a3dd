package mocks

import (
	"context"

	"github.com/blog-crud-api/internal/models"
)

// MockPostService is a map-backed mock implementation of service.PostService
type MockPostService struct {
	Posts map[string]*models.Post
	Err   error // returned by every operation when set
}

func NewMockPostService() *MockPostService {
	return &MockPostService{Posts: make(map[string]*models.Post)}
}

func (m *MockPostService) List(ctx context.Context) ([]*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	posts := make([]*models.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (m *MockPostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Posts[id], nil
}

func (m *MockPostService) Create(ctx context.Context, req *models.PostRequest) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	post := models.NewPostFromRequest(req)
	m.Posts[post.ID] = post
	return post, nil
}

func (m *MockPostService) Update(ctx context.Context, id string, req *models.PostRequest) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	post, ok := m.Posts[id]
	if !ok {
		return false, nil
	}
	post.ApplyRequest(req)
	post.Touch()
	return true, nil
}

func (m *MockPostService) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

func (m *MockPostService) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Posts), nil
}

// MockCommentService is a map-backed mock implementation of service.CommentService
type MockCommentService struct {
	Comments map[string]*models.Comment
	Err      error // returned by every operation when set
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentService) List(ctx context.Context) ([]models.CommentResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	responses := make([]models.CommentResponse, 0, len(m.Comments))
	for _, c := range m.Comments {
		responses = append(responses, models.NewCommentResponse(c))
	}
	return responses, nil
}

func (m *MockCommentService) GetByID(ctx context.Context, id string) (*models.CommentResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	resp := models.NewCommentResponse(comment)
	return &resp, nil
}

func (m *MockCommentService) Create(ctx context.Context, req *models.CommentRequest, author string) (*models.CommentResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comment := models.NewCommentFromRequest(req, author)
	m.Comments[comment.ID] = comment
	resp := models.NewCommentResponse(comment)
	return &resp, nil
}

func (m *MockCommentService) Update(ctx context.Context, id string, req *models.CommentRequest) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	comment, ok := m.Comments[id]
	if !ok {
		return false, nil
	}
	comment.ApplyRequest(req)
	comment.Touch()
	return true, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentService) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Comments), nil
}
