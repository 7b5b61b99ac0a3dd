package models

import (
	"time"
)

// Comment content length bounds, applied after trimming whitespace
const (
	MinCommentLength = 5
	MaxCommentLength = 500
)

// Comment represents a remark attached to a post. PostID references the
// owning post by value only; no relationship is loaded or enforced.
type Comment struct {
	BaseEntity
	PostID  string `json:"post_id" db:"post_id"`
	Author  string `json:"author" db:"author"`
	Content string `json:"content" db:"content"`
}

// CommentRequest is the write payload for creating or updating a comment.
// The author is never part of the payload; it comes from caller identity.
type CommentRequest struct {
	Content string `json:"content"`
	PostID  string `json:"post_id"`
}

// CommentResponse is the read projection of a comment. UpdatedAt is
// deliberately omitted from the transport shape.
type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentFromRequest builds a new Comment from a write payload and the
// caller identity. Identifier, timestamps and author are assigned here;
// anything the client supplied for them is ignored.
func NewCommentFromRequest(req *CommentRequest, author string) *Comment {
	return &Comment{
		BaseEntity: NewBaseEntity(),
		PostID:     req.PostID,
		Author:     author,
		Content:    req.Content,
	}
}

// ApplyRequest overlays the writable fields onto an existing comment.
// Only content is mutable on update; the owning post cannot be changed.
func (c *Comment) ApplyRequest(req *CommentRequest) {
	c.Content = req.Content
}

// NewCommentResponse projects a comment to its transport shape
func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    c.Author,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
