package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/internal/repositories"
	"newlife/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, places services.PlacesServiceInterface, log *zap.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, places, log.Named("trips"))
}
