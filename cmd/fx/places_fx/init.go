package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/internal/config"
	"newlife/internal/services"
	mem "newlife/pkg/memcache"
)

var Module = fx.Provide(
	providePlacesClient, providePlacesService)

func providePlacesClient(cfg config.Config, log *zap.Logger) services.PlacesClientInterface {
	if cfg.GooglePlacesAPIKey == "" {
		log.Warn("GOOGLE_PLACES_API_KEY not set, place lookups disabled")
	}
	return services.NewGooglePlacesClient(cfg.GooglePlacesAPIKey, cfg.PlacesBaseURL)
}

func providePlacesService(
	client services.PlacesClientInterface,
	cache mem.PhotoCache,
	destinations services.DestinationServiceInterface,
	log *zap.Logger,
) services.PlacesServiceInterface {
	return services.NewPlacesService(client, cache, destinations, log.Named("places"))
}
