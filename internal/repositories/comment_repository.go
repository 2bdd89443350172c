package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"newlife/internal/models/db_models"
)

type CommentRepositoryInterface interface {
	CreateComment(ctx context.Context, comment *db_models.Comment) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]db_models.Comment, error)
	DeleteComment(ctx context.Context, comment *db_models.Comment) error
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author").Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
}

func (r *CommentRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) DeleteComment(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", comment.ID).Delete(&db_models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("GREATEST(comment_count - 1, 0)")).Error
	})
}
