package checkers

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisChecker reports whether the rate-limiter store answers a ping.
type RedisChecker struct {
	client *redis.Client
}

func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}
