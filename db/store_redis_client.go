package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// StoreRedisClient is the RedisClient backed by a real Redis server.
type StoreRedisClient struct {
	client *redis.Client
}

// NewStoreRedisClient wraps an already configured go-redis client.
func NewStoreRedisClient(client *redis.Client) *StoreRedisClient {
	return &StoreRedisClient{client: client}
}

// Set sets a key-value pair in Redis
func (r *StoreRedisClient) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Get retrieves the value for a given key from Redis
func (r *StoreRedisClient) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Del removes a key; removing a missing key is not an error.
func (r *StoreRedisClient) Del(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *StoreRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

// Close releases the underlying connection pool.
func (r *StoreRedisClient) Close() error {
	return r.client.Close()
}
