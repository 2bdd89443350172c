package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"newlife/internal/models/db_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/repositories"
	"newlife/pkg/utils"
)

type DestinationRecord struct {
	Name        string
	DisplayName string
	Address     string
	Latitude    float64
	Longitude   float64
	PlaceID     string
	PhotoURL    string
}

type DestinationServiceInterface interface {
	Record(ctx context.Context, in DestinationRecord) error
	// Touch counts a lookup answered without a fresh Record.
	Touch(ctx context.Context, name string) error
	ListPopular(ctx context.Context, limit int) ([]resp.DestinationResponse, error)
	SearchSimilar(ctx context.Context, query string, limit int) ([]resp.DestinationResponse, error)
}

type DestinationService struct {
	repo     repositories.IDestinationRepository
	embedder utils.EmbeddingClientInterface
	logger   *zap.Logger
}

// embedder may be nil; similarity search is then unavailable.
func NewDestinationService(
	repo repositories.IDestinationRepository,
	embedder utils.EmbeddingClientInterface,
	logger *zap.Logger,
) DestinationServiceInterface {
	return &DestinationService{repo: repo, embedder: embedder, logger: logger}
}

func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

func (s *DestinationService) Record(ctx context.Context, in DestinationRecord) error {
	name := db_models.NormalizeDestination(in.Name)
	if name == "" {
		return utils.ErrInvalidInput
	}

	dest := &db_models.Destination{
		Name:        name,
		DisplayName: in.DisplayName,
		Address:     in.Address,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		PlaceID:     in.PlaceID,
		PhotoURL:    in.PhotoURL,
	}
	if err := s.repo.Upsert(ctx, dest); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if s.embedder == nil {
		return nil
	}
	model := s.embedder.EmbeddingModel()
	if dest.Embedding != nil && dest.EmbeddingModel == model {
		return nil
	}
	vec, err := s.embedder.GetEmbedding(ctx, embeddingText(dest))
	if err != nil {
		s.logger.Warn("destination embedding", zap.String("destination", name), zap.Error(err))
		return nil
	}
	if err := s.repo.SetEmbedding(ctx, dest.ID, model, vec); err != nil {
		s.logger.Warn("store destination embedding", zap.String("destination", name), zap.Error(err))
	}
	return nil
}

func (s *DestinationService) Touch(ctx context.Context, name string) error {
	name = db_models.NormalizeDestination(name)
	if name == "" {
		return utils.ErrInvalidInput
	}
	if err := s.repo.IncrementLookups(ctx, name); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func embeddingText(d *db_models.Destination) string {
	parts := []string{d.DisplayName}
	if d.Address != "" {
		parts = append(parts, d.Address)
	}
	return strings.Join(parts, ", ")
}

func (s *DestinationService) ListPopular(ctx context.Context, limit int) ([]resp.DestinationResponse, error) {
	rows, err := s.repo.ListPopular(ctx, clampLimit(limit, 50, 200))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toDestinationResponses(rows), nil
}

func (s *DestinationService) SearchSimilar(ctx context.Context, query string, limit int) ([]resp.DestinationResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if s.embedder == nil {
		return nil, utils.ErrFeatureNotConfigured
	}

	vec, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %v: %w", err, utils.ErrUpstreamService)
	}
	rows, err := s.repo.SearchByVector(ctx, s.embedder.EmbeddingModel(), vec, clampLimit(limit, 10, 50))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toDestinationResponses(rows), nil
}

func toDestinationResponses(rows []db_models.Destination) []resp.DestinationResponse {
	out := make([]resp.DestinationResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, resp.DestinationResponse{
			ID:          d.ID,
			Name:        d.Name,
			DisplayName: d.DisplayName,
			Address:     d.Address,
			Latitude:    d.Latitude,
			Longitude:   d.Longitude,
			PhotoURL:    d.PhotoURL,
			Lookups:     d.Lookups,
		})
	}
	return out
}
