package response_models

import "github.com/google/uuid"

type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type PostResponse struct {
	ID           uuid.UUID     `json:"id"`
	Author       AuthorSummary `json:"author"`
	Content      string        `json:"content"`
	Images       []string      `json:"images"`
	Location     string        `json:"location,omitempty"`
	TripID       *uuid.UUID    `json:"trip_id,omitempty"`
	LikeCount    int           `json:"like_count"`
	CommentCount int           `json:"comment_count"`
	LikedByMe    bool          `json:"liked_by_me"`
	SavedByMe    bool          `json:"saved_by_me"`
	CreatedAt    int64         `json:"created_at"`
}

type PaginatedPosts struct {
	Items    []PostResponse `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int64          `json:"total"`
}

type ToggleResponse struct {
	PostID uuid.UUID `json:"post_id"`
	Active bool      `json:"active"`
	Count  int       `json:"count,omitempty"`
}

type CommentResponse struct {
	ID        uuid.UUID     `json:"id"`
	PostID    uuid.UUID     `json:"post_id"`
	Author    AuthorSummary `json:"author"`
	Content   string        `json:"content"`
	CreatedAt int64         `json:"created_at"`
}
