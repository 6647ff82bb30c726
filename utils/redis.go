package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sandesh021/event-listing-backend/config"
)

var (
	redisClient *redis.Client
	cacheTTL    = 30 * time.Second
)

// InitRedis connects the cache client. The cache is an accelerator, not a
// dependency: when Redis is not configured or unreachable, caching is
// disabled and every read goes to the store.
func InitRedis(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, response caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable, response caching disabled: %v", err)
		return
	}

	redisClient = client
	log.Println("✅ Redis connected")
}

// CacheGet returns the cached payload for key, or false when caching is off
// or the key is missing.
func CacheGet(ctx context.Context, key string) ([]byte, bool) {
	if redisClient == nil {
		return nil, false
	}
	data, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheSet stores a payload under key with the default TTL.
func CacheSet(ctx context.Context, key string, payload []byte) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		log.Printf("⚠️ Redis SET %s failed: %v", key, err)
	}
}

// CacheInvalidate drops the given keys after a write.
func CacheInvalidate(ctx context.Context, keys ...string) {
	if redisClient == nil || len(keys) == 0 {
		return
	}
	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️ Redis DEL failed: %v", err)
	}
}
