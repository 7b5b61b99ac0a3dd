package models

// Post represents a publishable article
type Post struct {
	BaseEntity
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
}

// PostRequest is the write payload for creating or updating a post
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewPostFromRequest builds a new Post from a write payload.
// Identifier and timestamps are assigned here, never taken from the client.
func NewPostFromRequest(req *PostRequest) *Post {
	return &Post{
		BaseEntity: NewBaseEntity(),
		Title:      req.Title,
		Content:    req.Content,
	}
}

// ApplyRequest overlays the writable fields onto an existing post
func (p *Post) ApplyRequest(req *PostRequest) {
	p.Title = req.Title
	p.Content = req.Content
}
