package memcache_fx

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"newlife/internal/config"
	mem "newlife/pkg/memcache"
)

var Module = fx.Provide(provideOtpStore, providePhotoCache)

func provideOtpStore() mem.OtpStore {
	return mem.NewResetTokens()
}

// providePhotoCache layers Redis under the LRU when a client is configured.
func providePhotoCache(cfg config.Config, client *redis.Client) mem.PhotoCache {
	local := mem.NewLRUPhotoCache(cfg.PhotoCacheSize, cfg.PhotoCacheTTL)
	if client == nil {
		return local
	}
	return mem.NewRedisPhotoCache(client, local, cfg.PhotoCacheTTL)
}
