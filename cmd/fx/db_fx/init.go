package db_fx

import (
	"context"
	"database/sql"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/internal/api/controllers"
	"newlife/internal/config"
	"newlife/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideSQLDB, providePinger, provideRedis)

func provideDB(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}

func provideSQLDB(db *gorm.DB) (*sql.DB, error) {
	return infra.SQLDB(db)
}

func providePinger(db *sql.DB) controllers.Pinger {
	return db
}

// provideRedis yields a nil client when REDIS_URL is unset.
func provideRedis(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*redis.Client, error) {
	client, err := infra.InitRedis(cfg.RedisURL, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.CloseRedis(client, log)
			return nil
		},
	})
	return client, nil
}
