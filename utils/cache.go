// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"bookmychair/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared Redis client. It stays nil when REDIS_ADDR is unset.
var CacheClient *redis.Client

// InitCache connects CacheClient using the cache DB from AppConfig. It is a
// no-op without REDIS_ADDR.
func InitCache(ctx context.Context) (*redis.Client, error) {
	if config.AppConfig.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (cache): %w", err)
	}
	CacheClient = client
	return client, nil
}

// CloseCache closes CacheClient if it was opened.
func CloseCache() error {
	if CacheClient == nil {
		return nil
	}
	return CacheClient.Close()
}
