package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// GenerativeClientInterface produces raw JSON documents; callers own parsing and validation.
type GenerativeClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, in ItineraryPromptInput) (string, error)
	GenerateRecommendationsJSON(ctx context.Context, in RecommendationPromptInput) (string, error)
}

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	// EmbeddingModel names the vector space; vectors from different models are not comparable.
	EmbeddingModel() string
}

// AIClient is what a provider implementation offers.
type AIClient interface {
	GenerativeClientInterface
	EmbeddingClientInterface
	Close() error
}
