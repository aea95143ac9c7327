// File: internal/cache/cache.go
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of *redis.Client the service depends on. Incr/Expire
// exist for the fixed-window rate limiter; ttl <= 0 on Set means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn    func(ctx context.Context, key string) *redis.StringCmd
	SetFn    func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	IncrFn   func(ctx context.Context, key string) *redis.IntCmd
	ExpireFn func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	PingFn   func(ctx context.Context) *redis.StatusCmd
	CloseFn  func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.IncrFn != nil {
		return f.IncrFn(ctx, key)
	}
	panic("unexpected Incr")
}

func (f *FakeCache) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	if f.ExpireFn != nil {
		return f.ExpireFn(ctx, key, ttl)
	}
	panic("unexpected Expire")
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
