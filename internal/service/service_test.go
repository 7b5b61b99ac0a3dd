package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/blog-crud-api/internal/mocks"
	"github.com/blog-crud-api/internal/models"
	"github.com/blog-crud-api/internal/repository"
	"github.com/blog-crud-api/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func setupServices() (*service.Services, *mocks.MockPostRepository, *mocks.MockCommentRepository) {
	postRepo := mocks.NewMockPostRepository()
	commentRepo := mocks.NewMockCommentRepository()
	repos := &repository.Repositories{Post: postRepo, Comment: commentRepo}
	return service.NewServices(repos, zerolog.Nop()), postRepo, commentRepo
}

func TestPostService_CreateRoundTrip(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	created, err := services.Post.Create(ctx, &models.PostRequest{Title: "First post", Content: "Hello"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected a generated ID")
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("Expected a UUID id, got %q", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be assigned")
	}

	fetched, err := services.Post.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("Created post should be retrievable")
	}
	if fetched.Title != "First post" || fetched.Content != "Hello" {
		t.Errorf("Round trip mismatch: %+v", fetched)
	}
}

func TestPostService_GetByID_Absent(t *testing.T) {
	services, _, _ := setupServices()

	post, err := services.Post.GetByID(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if post != nil {
		t.Errorf("Expected nil for unknown id, got %+v", post)
	}
}

func TestPostService_Update(t *testing.T) {
	services, postRepo, _ := setupServices()
	ctx := context.Background()

	created, _ := services.Post.Create(ctx, &models.PostRequest{Title: "Old", Content: "Old body"})
	previous := created.UpdatedAt

	updated, err := services.Post.Update(ctx, created.ID, &models.PostRequest{Title: "New", Content: "New body"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated {
		t.Fatal("Expected update to succeed")
	}

	stored := postRepo.Posts[created.ID]
	if stored.Title != "New" || stored.Content != "New body" {
		t.Errorf("Expected overlaid fields, got %+v", stored)
	}
	if stored.UpdatedAt.Before(previous) {
		t.Errorf("Expected UpdatedAt >= %v, got %v", previous, stored.UpdatedAt)
	}
	if !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must be immutable")
	}
	if stored.ID != created.ID {
		t.Error("ID must be immutable")
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	services, postRepo, _ := setupServices()

	updated, err := services.Post.Update(context.Background(), uuid.New().String(), &models.PostRequest{Title: "x"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated {
		t.Error("Expected false for unknown id")
	}
	if len(postRepo.Posts) != 0 {
		t.Error("A missed update must not mutate anything")
	}
}

func TestPostService_Delete_Idempotent(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	created, _ := services.Post.Create(ctx, &models.PostRequest{Title: "Gone soon"})

	deleted, err := services.Post.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("Expected first delete to succeed")
	}

	deleted, err = services.Post.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to report false")
	}
}

func TestCommentService_CreateAssignsAuthor(t *testing.T) {
	services, _, commentRepo := setupServices()
	ctx := context.Background()

	postID := uuid.New().String()
	resp, err := services.Comment.Create(ctx, &models.CommentRequest{Content: "Nice post!", PostID: postID}, "alice")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if resp.Author != "alice" {
		t.Errorf("Expected author 'alice', got %q", resp.Author)
	}
	if resp.ID == "" {
		t.Error("Expected a generated ID")
	}
	if resp.PostID != postID {
		t.Errorf("Expected post_id %s, got %s", postID, resp.PostID)
	}
	if resp.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be assigned")
	}

	stored := commentRepo.Comments[resp.ID]
	if stored == nil {
		t.Fatal("Comment should be persisted")
	}
	if stored.Author != "alice" {
		t.Errorf("Persisted author mismatch: %q", stored.Author)
	}
}

func TestCommentService_GetByID_ProjectsToResponse(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	created, _ := services.Comment.Create(ctx, &models.CommentRequest{Content: "Nice post!", PostID: uuid.New().String()}, "bob")

	resp, err := services.Comment.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if resp == nil {
		t.Fatal("Created comment should be retrievable")
	}
	if resp.Content != "Nice post!" || resp.Author != "bob" {
		t.Errorf("Projection mismatch: %+v", resp)
	}
}

func TestCommentService_UpdateIsContentOnly(t *testing.T) {
	services, _, commentRepo := setupServices()
	ctx := context.Background()

	originalPostID := uuid.New().String()
	created, _ := services.Comment.Create(ctx, &models.CommentRequest{Content: "Original text", PostID: originalPostID}, "carol")
	previous := commentRepo.Comments[created.ID].UpdatedAt

	// A different post_id in the update payload must be ignored
	updated, err := services.Comment.Update(ctx, created.ID, &models.CommentRequest{
		Content: "Edited text",
		PostID:  uuid.New().String(),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated {
		t.Fatal("Expected update to succeed")
	}

	stored := commentRepo.Comments[created.ID]
	if stored.Content != "Edited text" {
		t.Errorf("Expected content overlaid, got %q", stored.Content)
	}
	if stored.PostID != originalPostID {
		t.Errorf("post_id must be immutable on update, got %s", stored.PostID)
	}
	if stored.Author != "carol" {
		t.Errorf("author must be immutable on update, got %q", stored.Author)
	}
	if stored.UpdatedAt.Before(previous) {
		t.Errorf("Expected UpdatedAt >= %v, got %v", previous, stored.UpdatedAt)
	}
}

func TestCommentService_Update_NotFound(t *testing.T) {
	services, _, _ := setupServices()

	updated, err := services.Comment.Update(context.Background(), uuid.New().String(), &models.CommentRequest{Content: "Edited text"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated {
		t.Error("Expected false for unknown id")
	}
}

func TestCommentService_Delete_Idempotent(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	created, _ := services.Comment.Create(ctx, &models.CommentRequest{Content: "Short lived", PostID: uuid.New().String()}, "dave")

	deleted, _ := services.Comment.Delete(ctx, created.ID)
	if !deleted {
		t.Fatal("Expected first delete to succeed")
	}

	deleted, _ = services.Comment.Delete(ctx, created.ID)
	if deleted {
		t.Error("Expected second delete to report false")
	}
}

func TestServices_StorageErrorsPropagate(t *testing.T) {
	services, postRepo, commentRepo := setupServices()
	ctx := context.Background()

	storageErr := errors.New("connection reset")
	postRepo.Err = storageErr
	commentRepo.Err = storageErr

	if _, err := services.Post.List(ctx); !errors.Is(err, storageErr) {
		t.Errorf("Expected storage error from Post.List, got %v", err)
	}
	if _, err := services.Post.Create(ctx, &models.PostRequest{Title: "x"}); !errors.Is(err, storageErr) {
		t.Errorf("Expected storage error from Post.Create, got %v", err)
	}
	if _, err := services.Comment.Update(ctx, "id", &models.CommentRequest{Content: "hello"}); !errors.Is(err, storageErr) {
		t.Errorf("Expected storage error from Comment.Update, got %v", err)
	}
}

func TestServices_Count(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	services.Post.Create(ctx, &models.PostRequest{Title: "one"})
	services.Post.Create(ctx, &models.PostRequest{Title: "two"})
	services.Comment.Create(ctx, &models.CommentRequest{Content: "Nice post!", PostID: uuid.New().String()}, "eve")

	posts, _ := services.Post.Count(ctx)
	comments, _ := services.Comment.Count(ctx)

	if posts != 2 {
		t.Errorf("Expected 2 posts, got %d", posts)
	}
	if comments != 1 {
		t.Errorf("Expected 1 comment, got %d", comments)
	}
}
