package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Runs only when STOREFRONT_TEST_REDIS_ADDR points at a disposable Redis.
func TestRedisStoreLifecycle(t *testing.T) {
	addr := os.Getenv("STOREFRONT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREFRONT_TEST_REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	store := NewRedisStore(rdb, time.Minute)
	s, err := store.Create(ctx, 3, "admin", "admin@project.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, s.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AdminID != 3 || got.Username != "admin" {
		t.Errorf("unexpected session: %+v", got)
	}

	ttl, err := rdb.TTL(ctx, redisKeyPrefix+s.Token).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("unexpected ttl %v (err %v)", ttl, err)
	}

	if err := store.Delete(ctx, s.Token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, s.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
