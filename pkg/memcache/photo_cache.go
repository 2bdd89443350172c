package mem

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PhotoCache maps a normalized destination to its resolved photo URL.
type PhotoCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, url string)
}

type lruPhotoCache struct {
	lru *expirable.LRU[string, string]
}

// NewLRUPhotoCache is bounded to size entries, each living at most ttl.
func NewLRUPhotoCache(size int, ttl time.Duration) PhotoCache {
	if size <= 0 {
		size = 512
	}
	return &lruPhotoCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (c *lruPhotoCache) Get(_ context.Context, key string) (string, bool) {
	return c.lru.Get(key)
}

func (c *lruPhotoCache) Set(_ context.Context, key string, url string) {
	c.lru.Add(key, url)
}

// redisPhotoCache fronts Redis with the local LRU so a hot key costs no round trip.
type redisPhotoCache struct {
	client *redis.Client
	local  PhotoCache
	ttl    time.Duration
	prefix string
}

func NewRedisPhotoCache(client *redis.Client, local PhotoCache, ttl time.Duration) PhotoCache {
	return &redisPhotoCache{
		client: client,
		local:  local,
		ttl:    ttl,
		prefix: "photo:",
	}
}

func (c *redisPhotoCache) Get(ctx context.Context, key string) (string, bool) {
	if url, ok := c.local.Get(ctx, key); ok {
		return url, true
	}

	// redis.Nil and connection errors both read as a miss
	url, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return "", false
	}
	c.local.Set(ctx, key, url)
	return url, true
}

func (c *redisPhotoCache) Set(ctx context.Context, key string, url string) {
	c.local.Set(ctx, key, url)
	_ = c.client.Set(ctx, c.prefix+key, url, c.ttl).Err()
}
