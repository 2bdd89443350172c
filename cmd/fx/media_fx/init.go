package media_fx

import (
	"go.uber.org/fx"
	"newlife/internal/config"
	"newlife/internal/services"
)

var Module = fx.Provide(provideMediaService)

func provideMediaService(cfg config.Config) services.MediaServiceInterface {
	return services.NewMediaService(cfg.MediaUploadURL, cfg.MediaUploadPreset, cfg.MediaMaxBytes)
}
