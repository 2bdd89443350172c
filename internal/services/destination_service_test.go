package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"newlife/internal/models/db_models"
	"newlife/pkg/utils"
)

func TestDestinationRecord_EmbedsNewRows(t *testing.T) {
	id := uuid.New()
	var embedded uuid.UUID
	var model string
	repo := &mockDestinationRepo{
		UpsertFunc: func(_ context.Context, d *db_models.Destination) error {
			d.ID = id
			return nil
		},
		SetEmbeddingFunc: func(_ context.Context, gotID uuid.UUID, m string, _ pgvector.Vector) error {
			embedded = gotID
			model = m
			return nil
		},
	}
	embedder := &mockEmbedder{vec: pgvector.NewVector([]float32{0.1, 0.2})}
	svc := NewDestinationService(repo, embedder, zap.NewNop())

	require.NoError(t, svc.Record(context.Background(), DestinationRecord{Name: " Da  Nang ", DisplayName: "Da Nang"}))
	assert.Equal(t, id, embedded)
	assert.Equal(t, "test/embed", model)
	assert.Equal(t, 1, embedder.calls)
}

func TestDestinationRecord_SkipsExistingEmbeddingAndToleratesFailure(t *testing.T) {
	existing := pgvector.NewVector([]float32{1})
	repo := &mockDestinationRepo{UpsertFunc: func(_ context.Context, d *db_models.Destination) error {
		d.Embedding = &existing
		d.EmbeddingModel = "test/embed"
		return nil
	}}
	embedder := &mockEmbedder{}
	svc := NewDestinationService(repo, embedder, zap.NewNop())

	require.NoError(t, svc.Record(context.Background(), DestinationRecord{Name: "Hue"}))
	assert.Zero(t, embedder.calls)

	repo.UpsertFunc = nil
	embedder.err = errors.New("quota")
	assert.NoError(t, svc.Record(context.Background(), DestinationRecord{Name: "Hue"}))

	assert.ErrorIs(t, svc.Record(context.Background(), DestinationRecord{Name: "  "}), utils.ErrInvalidInput)
}

func TestDestinationRecord_ReembedsAfterModelChange(t *testing.T) {
	old := pgvector.NewVector(make([]float32, 768))
	var model string
	repo := &mockDestinationRepo{
		UpsertFunc: func(_ context.Context, d *db_models.Destination) error {
			d.Embedding = &old
			d.EmbeddingModel = "gemini/text-embedding-004"
			return nil
		},
		SetEmbeddingFunc: func(_ context.Context, _ uuid.UUID, m string, _ pgvector.Vector) error {
			model = m
			return nil
		},
	}
	embedder := &mockEmbedder{model: "openai/text-embedding-3-small", vec: pgvector.NewVector(make([]float32, 1536))}
	svc := NewDestinationService(repo, embedder, zap.NewNop())

	require.NoError(t, svc.Record(context.Background(), DestinationRecord{Name: "Hue"}))
	assert.Equal(t, 1, embedder.calls)
	assert.Equal(t, "openai/text-embedding-3-small", model)
}

func TestDestinationTouch(t *testing.T) {
	var got string
	repo := &mockDestinationRepo{IncrementLookupsFunc: func(_ context.Context, name string) error {
		got = name
		return nil
	}}
	svc := NewDestinationService(repo, nil, zap.NewNop())

	require.NoError(t, svc.Touch(context.Background(), "  Ha  Long "))
	assert.Equal(t, "ha long", got)
	assert.ErrorIs(t, svc.Touch(context.Background(), " "), utils.ErrInvalidInput)

	repo.IncrementLookupsFunc = func(context.Context, string) error { return errors.New("down") }
	assert.ErrorIs(t, svc.Touch(context.Background(), "Hue"), utils.ErrDatabaseError)
}

func TestDestinationListPopular_ClampsLimit(t *testing.T) {
	var got int
	repo := &mockDestinationRepo{ListPopularFunc: func(_ context.Context, limit int) ([]db_models.Destination, error) {
		got = limit
		return []db_models.Destination{{Name: "hue", DisplayName: "Hue", Lookups: 3}}, nil
	}}
	svc := NewDestinationService(repo, nil, zap.NewNop())

	rows, err := svc.ListPopular(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 50, got)
	assert.Equal(t, int64(3), rows[0].Lookups)

	_, _ = svc.ListPopular(context.Background(), 9999)
	assert.Equal(t, 200, got)
}

func TestDestinationSearchSimilar(t *testing.T) {
	svc := NewDestinationService(&mockDestinationRepo{}, nil, zap.NewNop())
	_, err := svc.SearchSimilar(context.Background(), "beaches", 5)
	assert.ErrorIs(t, err, utils.ErrFeatureNotConfigured)

	var limit int
	var model string
	repo := &mockDestinationRepo{SearchByVectorFunc: func(_ context.Context, m string, _ pgvector.Vector, l int) ([]db_models.Destination, error) {
		limit = l
		model = m
		return []db_models.Destination{{Name: "nha trang"}}, nil
	}}
	svc = NewDestinationService(repo, &mockEmbedder{vec: pgvector.NewVector([]float32{1})}, zap.NewNop())
	rows, err := svc.SearchSimilar(context.Background(), "beaches", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, limit)
	assert.Equal(t, "test/embed", model)
	assert.Len(t, rows, 1)

	_, err = svc.SearchSimilar(context.Background(), " ", 3)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
