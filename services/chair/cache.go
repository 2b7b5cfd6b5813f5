package chair

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"bookmychair/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const chairCachePrefix = "chairs:"

// RedisListCache keys listings by a generation counter. Invalidate bumps the
// counter so every older key is ignored and left to expire.
type RedisListCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (c *RedisListCache) generationKey() string {
	return chairCachePrefix + "generation"
}

// listKey escapes the filter values so distinct filters never share a key.
func listKey(gen int64, filter models.ChairFilter) string {
	return fmt.Sprintf("%slist:%d:%s:%s", chairCachePrefix, gen,
		url.QueryEscape(filter.Type), url.QueryEscape(filter.Status))
}

func (c *RedisListCache) key(ctx context.Context, filter models.ChairFilter) (string, error) {
	gen, err := c.Client.Get(ctx, c.generationKey()).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return listKey(gen, filter), nil
}

func (c *RedisListCache) Get(ctx context.Context, filter models.ChairFilter) ([]models.Chair, string, bool) {
	key, err := c.key(ctx, filter)
	if err != nil {
		c.warn("chair cache generation lookup failed", err)
		return nil, "", false
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.warn("chair cache read failed", err)
		}
		return nil, key, false
	}
	var chairs []models.Chair
	if err := json.Unmarshal(raw, &chairs); err != nil {
		c.warn("chair cache entry corrupt", err)
		return nil, key, false
	}
	return chairs, key, true
}

// Set stores chairs under the key Get returned.
func (c *RedisListCache) Set(ctx context.Context, key string, chairs []models.Chair) {
	if key == "" {
		return
	}
	raw, err := json.Marshal(chairs)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		c.warn("chair cache write failed", err)
	}
}

func (c *RedisListCache) Invalidate(ctx context.Context) {
	if err := c.Client.Incr(ctx, c.generationKey()).Err(); err != nil {
		c.warn("chair cache invalidation failed", err)
	}
}

func (c *RedisListCache) warn(msg string, err error) {
	if c.Logger != nil {
		c.Logger.Warn(msg, zap.Error(err))
	}
}
