package repository

import (
	"context"
	"database/sql"

	"github.com/blog-crud-api/internal/database"
	"github.com/blog-crud-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// GetAll retrieves all comments ordered by creation time
func (r *commentRepo) GetAll(ctx context.Context) ([]*models.Comment, error) {
	query := `SELECT id, post_id, author, content, created_at, updated_at FROM comments ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.Author, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// GetByID retrieves a comment by ID, returning nil when no row matches
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT id, post_id, author, content, created_at, updated_at FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.Author, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.PostID, comment.Author, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// Update persists the writable fields of an existing comment
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.Content, comment.UpdatedAt)
	return err
}

// Delete removes a comment by ID
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
