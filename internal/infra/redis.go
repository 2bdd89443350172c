package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitRedis returns nil when url is empty; callers fall back to in-process caches.
func InitRedis(url string, log *zap.Logger) (*redis.Client, error) {
	if url == "" {
		log.Info("REDIS_URL not set, using in-process caches only")
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis ready", zap.String("addr", opts.Addr))
	return client, nil
}

func CloseRedis(client *redis.Client, log *zap.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Error("closing redis", zap.Error(err))
	}
}
