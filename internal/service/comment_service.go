package service

import (
	"context"

	"github.com/blog-crud-api/internal/models"
	"github.com/blog-crud-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo repository.CommentRepository
	log  zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repo repository.CommentRepository, log zerolog.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// List returns all comments projected to their transport shape
func (s *commentService) List(ctx context.Context) ([]models.CommentResponse, error) {
	comments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, models.NewCommentResponse(comment))
	}
	return responses, nil
}

// GetByID returns the comment with the given ID, or nil when absent
func (s *commentService) GetByID(ctx context.Context, id string) (*models.CommentResponse, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}

	resp := models.NewCommentResponse(comment)
	return &resp, nil
}

// Create builds a comment from the write payload and the caller identity,
// then persists it. The author always comes from the identity argument;
// client-supplied identifiers, timestamps and author values are ignored.
func (s *commentService) Create(ctx context.Context, req *models.CommentRequest, author string) (*models.CommentResponse, error) {
	comment := models.NewCommentFromRequest(req, author)

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("post_id", comment.PostID).
		Msg("Comment created")

	resp := models.NewCommentResponse(comment)
	return &resp, nil
}

// Update overlays the content onto an existing comment and refreshes its
// update timestamp. The owning post is immutable after creation. Returns
// false when no comment matches the ID.
func (s *commentService) Update(ctx context.Context, id string, req *models.CommentRequest) (bool, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}

	comment.ApplyRequest(req)
	comment.Touch()

	if err := s.repo.Update(ctx, comment); err != nil {
		return false, err
	}

	s.log.Info().Str("comment_id", comment.ID).Msg("Comment updated")
	return true, nil
}

// Delete removes the comment with the given ID. Returns false when absent.
func (s *commentService) Delete(ctx context.Context, id string) (bool, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return true, nil
}

// Count returns the total number of comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
