// File: internal/cache/redis.go
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisNewClient is overridable in tests.
var redisNewClient = func(opt *redis.Options) Cache {
	return redis.NewClient(opt)
}

// NewRedisClient connects a redis client and verifies it with a ping.
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
