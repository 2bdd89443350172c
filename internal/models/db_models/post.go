package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Post struct {
	BaseModel
	UserID       uuid.UUID      `gorm:"type:uuid;index;not null"`
	Content      string         `gorm:"type:text"`
	Images       pq.StringArray `gorm:"type:text[]"`
	Location     string
	TripID       *uuid.UUID `gorm:"type:uuid;index"`
	LikeCount    int        `gorm:"default:0"`
	CommentCount int        `gorm:"default:0"`

	Author Account `gorm:"foreignKey:UserID"`
}

// One row per user and post, enforced by the composite unique index.
type PostLike struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_post_like_user_post"`
	PostID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_post_like_user_post"`
}

type PostSave struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_post_save_user_post"`
	PostID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_post_save_user_post"`
}

type Comment struct {
	BaseModel
	PostID  uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Content string    `gorm:"type:text;not null"`

	Author Account `gorm:"foreignKey:UserID"`
}
