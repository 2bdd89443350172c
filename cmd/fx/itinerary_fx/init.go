package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/cmd/fx/ai_fx"
	"newlife/internal/repositories"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	repo repositories.ItineraryRepository,
	trips services.TripServiceInterface,
	ai utils.GenerativeClientInterface,
	model ai_fx.ModelName,
	log *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(repo, trips, ai, string(model), log.Named("itineraries"))
}
