package chair

import (
	"context"
	"testing"
	"time"

	"bookmychair/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestListCache(t *testing.T) (*RedisListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &RedisListCache{Client: client, TTL: time.Minute}, mr
}

func TestRedisListCacheRoundTrip(t *testing.T) {
	cache, mr := newTestListCache(t)
	ctx := context.Background()
	filter := models.ChairFilter{Type: "Ergonomic"}

	_, key, ok := cache.Get(ctx, filter)
	if ok {
		t.Fatal("empty cache reported a hit")
	}
	if key == "" {
		t.Fatal("miss returned no key")
	}
	cache.Set(ctx, key, []models.Chair{{ChairID: "C-1", ChairType: "Ergonomic"}})

	got, _, ok := cache.Get(ctx, filter)
	if !ok || len(got) != 1 || got[0].ChairID != "C-1" {
		t.Fatalf("cached = %v, %v", got, ok)
	}
	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Fatalf("ttl = %v, want %v", ttl, time.Minute)
	}

	if _, _, ok := cache.Get(ctx, models.ChairFilter{Type: "BeanBag"}); ok {
		t.Fatal("other filter hit a foreign entry")
	}

	cache.Invalidate(ctx)
	if _, _, ok := cache.Get(ctx, filter); ok {
		t.Fatal("entry survived invalidation")
	}
}

func TestRedisListCacheStaleSetAfterInvalidate(t *testing.T) {
	cache, _ := newTestListCache(t)
	ctx := context.Background()
	filter := models.ChairFilter{}

	// A reader misses, a writer invalidates, then the reader stores what it
	// loaded before the write.
	_, staleKey, ok := cache.Get(ctx, filter)
	if ok {
		t.Fatal("unexpected hit")
	}
	cache.Invalidate(ctx)
	cache.Set(ctx, staleKey, []models.Chair{{ChairID: "C-old"}})

	got, freshKey, ok := cache.Get(ctx, filter)
	if ok {
		t.Fatalf("stale listing served after invalidation: %v", got)
	}
	if freshKey == staleKey {
		t.Fatalf("key %q did not change across invalidation", freshKey)
	}
}

func TestRedisListCacheKeysDoNotCollide(t *testing.T) {
	a := listKey(0, models.ChairFilter{Type: "a:b", Status: "c"})
	b := listKey(0, models.ChairFilter{Type: "a", Status: "b:c"})
	if a == b {
		t.Fatalf("filters share key %q", a)
	}

	cache, _ := newTestListCache(t)
	ctx := context.Background()
	_, key, _ := cache.Get(ctx, models.ChairFilter{Type: "a:b", Status: "c"})
	cache.Set(ctx, key, []models.Chair{{ChairID: "C-1"}})
	if _, _, ok := cache.Get(ctx, models.ChairFilter{Type: "a", Status: "b:c"}); ok {
		t.Fatal("colliding filter served another filter's listing")
	}
}

func TestRedisListCacheUnavailable(t *testing.T) {
	cache, mr := newTestListCache(t)
	ctx := context.Background()
	mr.Close()

	if _, key, ok := cache.Get(ctx, models.ChairFilter{}); ok || key != "" {
		t.Fatalf("down cache returned key %q ok %v", key, ok)
	}
	// Must not panic or block.
	cache.Set(ctx, "", []models.Chair{{ChairID: "C-1"}})
	cache.Invalidate(ctx)
}
