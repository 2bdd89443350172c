package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"newlife/internal/models/db_models"
)

type IDestinationRepository interface {
	// Upsert inserts by normalized name or refreshes the existing row and bumps its lookup count.
	Upsert(ctx context.Context, destination *db_models.Destination) error
	FindByName(ctx context.Context, name string) (*db_models.Destination, error)
	IncrementLookups(ctx context.Context, name string) error
	SetEmbedding(ctx context.Context, id uuid.UUID, model string, embedding pgvector.Vector) error
	ListPopular(ctx context.Context, limit int) ([]db_models.Destination, error)
	SearchByVector(ctx context.Context, model string, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
}

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) IDestinationRepository {
	return &DestinationRepository{
		db: db,
	}
}

func (r *DestinationRepository) Upsert(ctx context.Context, destination *db_models.Destination) error {
	destination.Lookups = 1
	err := r.db.WithContext(ctx).
		Omit("Embedding", "EmbeddingModel").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"display_name": destination.DisplayName,
				"address":      destination.Address,
				"latitude":     destination.Latitude,
				"longitude":    destination.Longitude,
				"photo_url":    destination.PhotoURL,
				"place_id":     destination.PlaceID,
				"lookups":      gorm.Expr("destinations.lookups + 1"),
				"deleted_at":   nil,
			}),
		}).
		Create(destination).Error
	if err != nil {
		return err
	}

	// on conflict the generated id is not the stored one
	var stored db_models.Destination
	if err := r.db.WithContext(ctx).First(&stored, "name = ?", destination.Name).Error; err != nil {
		return err
	}
	*destination = stored
	return nil
}

func (r *DestinationRepository) FindByName(ctx context.Context, name string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

// IncrementLookups is a no-op for names not yet in the catalogue.
func (r *DestinationRepository) IncrementLookups(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Destination{}).
		Where("name = ?", name).
		UpdateColumn("lookups", gorm.Expr("lookups + 1")).Error
}

func (r *DestinationRepository) SetEmbedding(ctx context.Context, id uuid.UUID, model string, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Destination{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"embedding":       embedding,
			"embedding_model": model,
		}).Error
}

func (r *DestinationRepository) ListPopular(ctx context.Context, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Omit("embedding").
		Order("lookups DESC").
		Order("name ASC").
		Limit(limit).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) SearchByVector(ctx context.Context, model string, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	var results []db_models.Destination

	vecStr := vector.String()

	query := `
        SELECT id, created_at, updated_at, name, display_name, address, latitude, longitude, photo_url, place_id, lookups
        FROM destinations
        WHERE deleted_at IS NULL AND embedding IS NOT NULL AND embedding_model = ?
        ORDER BY embedding <=> ?  -- cosine distance, closer to 0 is better
        LIMIT ?
    `

	err := r.db.WithContext(ctx).Raw(query, model, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
