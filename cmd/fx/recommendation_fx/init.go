package recommendation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

var Module = fx.Provide(provideRecommendationService)

func provideRecommendationService(ai utils.GenerativeClientInterface, log *zap.Logger) services.RecommendationServiceInterface {
	return services.NewRecommendationService(ai, log.Named("recommendations"))
}
