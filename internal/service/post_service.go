package service

import (
	"context"

	"github.com/blog-crud-api/internal/models"
	"github.com/blog-crud-api/internal/repository"
	"github.com/rs/zerolog"
)

// postService is the concrete implementation of PostService
type postService struct {
	repo repository.PostRepository
	log  zerolog.Logger
}

// newPostService creates a new PostService
func newPostService(repo repository.PostRepository, log zerolog.Logger) PostService {
	return &postService{
		repo: repo,
		log:  log.With().Str("service", "post").Logger(),
	}
}

// List returns all posts
func (s *postService) List(ctx context.Context) ([]*models.Post, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the post with the given ID, or nil when absent
func (s *postService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Create builds a post from the write payload and persists it.
// Identifier and timestamps are assigned by entity construction.
func (s *postService) Create(ctx context.Context, req *models.PostRequest) (*models.Post, error) {
	post := models.NewPostFromRequest(req)

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Msg("Post created")
	return post, nil
}

// Update overlays the write payload onto an existing post and refreshes its
// update timestamp. Returns false when no post matches the ID.
func (s *postService) Update(ctx context.Context, id string, req *models.PostRequest) (bool, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}

	post.ApplyRequest(req)
	post.Touch()

	if err := s.repo.Update(ctx, post); err != nil {
		return false, err
	}

	s.log.Info().Str("post_id", post.ID).Msg("Post updated")
	return true, nil
}

// Delete removes the post with the given ID. Returns false when absent,
// so a repeated delete reports false rather than failing.
func (s *postService) Delete(ctx context.Context, id string) (bool, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}

	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return true, nil
}

// Count returns the total number of posts
func (s *postService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
