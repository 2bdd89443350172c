package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"newlife/internal/models/request_models"
	resp "newlife/internal/models/response_models"
	"newlife/pkg/utils"
)

const defaultRecommendationCount = 5

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, request request_models.RecommendationRequest) ([]resp.Recommendation, error)
}

type RecommendationService struct {
	ai     utils.GenerativeClientInterface
	logger *zap.Logger
}

func NewRecommendationService(ai utils.GenerativeClientInterface, logger *zap.Logger) RecommendationServiceInterface {
	return &RecommendationService{ai: ai, logger: logger}
}

func (s *RecommendationService) Recommend(ctx context.Context, request request_models.RecommendationRequest) ([]resp.Recommendation, error) {
	count := request.Count
	if count == 0 {
		count = defaultRecommendationCount
	}
	if count < 1 || count > utils.MaxRecommendationSize {
		return nil, utils.ErrInvalidInput
	}
	if s.ai == nil {
		return nil, utils.ErrFeatureNotConfigured
	}

	raw, err := s.ai.GenerateRecommendationsJSON(ctx, utils.RecommendationPromptInput{
		Interests:   cleanList(request.Interests),
		Budget:      strings.TrimSpace(request.Budget),
		TravelMonth: strings.TrimSpace(request.TravelMonth),
		Travelers:   request.Travelers,
		Origin:      strings.TrimSpace(request.Origin),
		Count:       count,
	})
	if err != nil {
		s.logger.Warn("recommendation generation failed", zap.Error(err))
		return nil, fmt.Errorf("generate recommendations: %v: %w", err, utils.ErrUpstreamService)
	}

	return ParseRecommendations(raw, count)
}

// ParseRecommendations keeps named entries and trims the list to count.
func ParseRecommendations(raw string, count int) ([]resp.Recommendation, error) {
	var doc struct {
		Recommendations []resp.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	out := make([]resp.Recommendation, 0, len(doc.Recommendations))
	for _, r := range doc.Recommendations {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			continue
		}
		out = append(out, r)
		if len(out) == count {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no recommendations", utils.ErrUnexpectedBehaviorOfAI)
	}
	return out, nil
}
