package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"newlife/internal/config"
	"newlife/internal/models/db_models"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// InitPostgresql opens the pool, enables pgvector and migrates every table.
func InitPostgresql(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormLevel := logger.Warn
	if cfg.IsProduction() {
		gormLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(gormLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return nil, fmt.Errorf("enable pgvector: %w", err)
	}
	if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("postgres ready",
		zap.Int("max_open_conns", maxOpenConns),
		zap.Int("tables", len(db_models.AllModels())))
	return db, nil
}

// SQLDB exposes the pool underneath gorm for health checks.
func SQLDB(db *gorm.DB) (*sql.DB, error) {
	return db.DB()
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("postgres pool", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("closing postgres", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}
