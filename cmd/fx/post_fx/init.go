package post_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/internal/repositories"
	"newlife/internal/services"
)

var Module = fx.Provide(
	providePostRepo, provideCommentRepo, providePostService)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func provideCommentRepo(db *gorm.DB) repositories.CommentRepositoryInterface {
	return repositories.NewCommentRepository(db)
}

func providePostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepositoryInterface,
	accountRepo repositories.AccountRepository,
	trips services.TripServiceInterface,
	log *zap.Logger,
) services.PostServiceInterface {
	return services.NewPostService(postRepo, commentRepo, accountRepo, trips, log.Named("posts"))
}
