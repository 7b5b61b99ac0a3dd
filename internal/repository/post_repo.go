package repository

import (
	"context"
	"database/sql"

	"github.com/blog-crud-api/internal/database"
	"github.com/blog-crud-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// GetAll retrieves all posts ordered by creation time
func (r *postRepo) GetAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, title, content, created_at, updated_at FROM posts ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

// GetByID retrieves a post by ID, returning nil when no row matches
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT id, title, content, created_at, updated_at FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Create inserts a new post
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

// Update persists the writable fields of an existing post
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `UPDATE posts SET title = $2, content = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.UpdatedAt)
	return err
}

// Delete removes a post by ID
func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}
