package destination_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/internal/repositories"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.IDestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(
	repo repositories.IDestinationRepository,
	embedder utils.EmbeddingClientInterface,
	log *zap.Logger,
) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, embedder, log.Named("destinations"))
}
