package weather_fx

import (
	"go.uber.org/fx"
	"newlife/internal/config"
	"newlife/internal/services"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(cfg config.Config) services.WeatherServiceInterface {
	return services.NewOpenMeteoWeatherService(cfg.GeocodingURL, cfg.ForecastURL)
}
