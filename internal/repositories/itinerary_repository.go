package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "newlife/internal/models/db_models"
)

type ItineraryRepository interface {
	// ReplaceForTrip wipes any itinerary of the same trip and stores the new tree.
	ReplaceForTrip(ctx context.Context, itinerary *dbm.Itinerary) error
	FindByTripId(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error)
	DeleteByTripId(ctx context.Context, tripID uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ReplaceForTrip(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipeItinerary(tx, itinerary.TripID); err != nil {
			return err
		}

		days := itinerary.Days
		itinerary.Days = nil
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}

		for i := range days {
			days[i].ItineraryID = itinerary.ID
			acts := days[i].Activities
			days[i].Activities = nil
			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}

			for j := range acts {
				acts[j].ItineraryDayID = days[i].ID
				acts[j].Position = j
			}
			if len(acts) > 0 {
				if err := tx.Create(&acts).Error; err != nil {
					return err
				}
			}
			days[i].Activities = acts
		}
		itinerary.Days = days
		return nil
	})
}

func (r *itineraryRepository) FindByTripId(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) DeleteByTripId(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return wipeItinerary(tx, tripID)
	})
}

// wipeItinerary hard deletes so the unique trip_id index is free for the replacement.
func wipeItinerary(tx *gorm.DB, tripID uuid.UUID) error {
	itineraryIDs := tx.Unscoped().
		Model(&dbm.Itinerary{}).
		Select("id").
		Where("trip_id = ?", tripID)
	dayIDs := tx.Unscoped().
		Model(&dbm.ItineraryDay{}).
		Select("id").
		Where("itinerary_id IN (?)", itineraryIDs)

	if err := tx.Unscoped().
		Where("itinerary_day_id IN (?)", dayIDs).
		Delete(&dbm.ItineraryActivity{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().
		Where("itinerary_id IN (?)", itineraryIDs).
		Delete(&dbm.ItineraryDay{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().
		Where("trip_id = ?", tripID).
		Delete(&dbm.Itinerary{}).Error
}
