package redis

import (
	"context"
	"fmt"
	"time"

	"riftrewind/pkg/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a thin wrapper around the go-redis client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates and verifies a new Redis connection.
func NewClient(cfg config.RedisConfiguration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("couldn't connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Close closes the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Get wraps the client Get to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Set wraps the client Set to already return the .Err().
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// ListFront returns the first element of a list key.
func (r *RedisClient) ListFront(ctx context.Context, key string) (string, error) {
	return r.Client.LIndex(ctx, key, 0).Result()
}

// ReplaceList deletes the key and pushes the given values in order.
func (r *RedisClient) ReplaceList(ctx context.Context, key string, values []string) error {
	if err := r.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("couldn't delete the Redis key: %w", err)
	}

	items := make([]interface{}, len(values))
	for i, v := range values {
		items[i] = v
	}
	return r.Client.RPush(ctx, key, items...).Err()
}
