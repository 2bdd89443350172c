package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "newlife/internal/models/db_models"
)

type PostRepository interface {
	Create(ctx context.Context, post *dbm.Post) error
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Post, error)
	Update(ctx context.Context, post *dbm.Post) error
	ListFeed(ctx context.Context, page, pageSize int) ([]dbm.Post, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Post, int64, error)
	ListSavedBy(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Post, int64, error)
	LikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	SavedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (liked bool, count int, err error)
	ToggleSave(ctx context.Context, userID, postID uuid.UUID) (saved bool, err error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *dbm.Post) error {
	return r.db.WithContext(ctx).Omit("Author").Create(post).Error
}

func (r *postRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Post, error) {
	var post dbm.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Update writes only the editable columns so concurrent like and comment counters survive.
func (r *postRepository) Update(ctx context.Context, post *dbm.Post) error {
	return r.db.WithContext(ctx).Model(post).
		Select("content", "images", "location", "updated_at").
		Updates(post).Error
}

func (r *postRepository) ListFeed(ctx context.Context, page, pageSize int) ([]dbm.Post, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&dbm.Post{}), page, pageSize)
}

func (r *postRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Post{}).Where("user_id = ?", userID)
	return r.paginate(q, page, pageSize)
}

func (r *postRepository) ListSavedBy(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Post, int64, error) {
	saved := r.db.WithContext(ctx).
		Model(&dbm.PostSave{}).
		Select("post_id").
		Where("user_id = ?", userID)
	q := r.db.WithContext(ctx).Model(&dbm.Post{}).Where("id IN (?)", saved)
	return r.paginate(q, page, pageSize)
}

func (r *postRepository) paginate(q *gorm.DB, page, pageSize int) ([]dbm.Post, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []dbm.Post
	err := q.Session(&gorm.Session{}).
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) LikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return r.markedPostIDs(ctx, &dbm.PostLike{}, userID, postIDs)
}

func (r *postRepository) SavedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return r.markedPostIDs(ctx, &dbm.PostSave{}, userID, postIDs)
}

func (r *postRepository) markedPostIDs(ctx context.Context, model interface{}, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *postRepository) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, int, error) {
	var liked bool
	var count int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&dbm.PostLike{})
		if res.Error != nil {
			return res.Error
		}

		delta := gorm.Expr("GREATEST(like_count - 1, 0)")
		if res.RowsAffected == 0 {
			if err := tx.Create(&dbm.PostLike{UserID: userID, PostID: postID}).Error; err != nil {
				return err
			}
			liked = true
			delta = gorm.Expr("like_count + 1")
		}

		if err := tx.Model(&dbm.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", delta).Error; err != nil {
			return err
		}

		return tx.Model(&dbm.Post{}).
			Select("like_count").
			Where("id = ?", postID).
			Scan(&count).Error
	})

	return liked, count, err
}

func (r *postRepository) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	var saved bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&dbm.PostSave{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		saved = true
		return tx.Create(&dbm.PostSave{UserID: userID, PostID: postID}).Error
	})

	return saved, err
}

// DeleteCascade drops the post together with its comments, likes and saves.
func (r *postRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&dbm.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&dbm.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&dbm.PostSave{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbm.Post{}).Error
	})
}
