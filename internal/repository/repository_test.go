package repository_test

import (
	"context"
	"testing"

	"github.com/blog-crud-api/internal/mocks"
	"github.com/blog-crud-api/internal/models"
)

func TestMockPostRepository_RoundTrip(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	post := models.NewPostFromRequest(&models.PostRequest{Title: "First post", Content: "Hello"})
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored == nil {
		t.Fatal("Created post should be retrievable")
	}
	if stored.Title != "First post" || stored.Content != "Hello" {
		t.Errorf("Round trip mismatch: %+v", stored)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 post, got %d", len(all))
	}

	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}

func TestMockPostRepository_GetByID_Absent(t *testing.T) {
	repo := mocks.NewMockPostRepository()

	stored, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored != nil {
		t.Errorf("Expected nil for unknown id, got %+v", stored)
	}
}

func TestMockCommentRepository_DeleteThenGet(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := models.NewCommentFromRequest(&models.CommentRequest{
		Content: "Nice post!",
		PostID:  "550e8400-e29b-41d4-a716-446655440000",
	}, "alice")
	if err := repo.Create(ctx, comment); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, comment.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, comment.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored != nil {
		t.Errorf("Expected nil after delete, got %+v", stored)
	}
}

func TestMockCommentRepository_UpdatePersistsContent(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := models.NewCommentFromRequest(&models.CommentRequest{
		Content: "Original text",
		PostID:  "550e8400-e29b-41d4-a716-446655440000",
	}, "bob")
	repo.Create(ctx, comment)

	comment.Content = "Edited text"
	comment.Touch()
	if err := repo.Update(ctx, comment); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, _ := repo.GetByID(ctx, comment.ID)
	if stored.Content != "Edited text" {
		t.Errorf("Expected updated content, got %q", stored.Content)
	}
}
