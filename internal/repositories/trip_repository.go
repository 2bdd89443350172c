package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"newlife/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	// ListByUser returns every trip of the user ordered by start date.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	UpdateCoverPhoto(ctx context.Context, id uuid.UUID, url string) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Order("created_at ASC").
		Find(&trips).Error

	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) UpdateCoverPhoto(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", id).
		Update("cover_photo_url", url).Error
}

// DeleteCascade removes the trip with its itinerary tree and expenses in one transaction.
func (r *tripRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itineraryIDs := tx.Model(&db_models.Itinerary{}).
			Select("id").
			Where("trip_id = ?", id)
		dayIDs := tx.Model(&db_models.ItineraryDay{}).
			Select("id").
			Where("itinerary_id IN (?)", itineraryIDs)

		if err := tx.Where("itinerary_day_id IN (?)", dayIDs).
			Delete(&db_models.ItineraryActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id IN (?)", itineraryIDs).
			Delete(&db_models.ItineraryDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).
			Delete(&db_models.Itinerary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).
			Delete(&db_models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&db_models.Trip{}).Error
	})
}
