package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bakery-server/db"
	"bakery-server/models"
)

// STORE_CLOSURE_KEY_V1 holds the manual closure override, same JSON shape as
// the storefront's old storeClosure local storage entry.
const STORE_CLOSURE_KEY_V1 = "store_closure_v1"

// STORE_CONFIG_SNAPSHOT_KEY_V1 holds the last store config fetched from the backend.
const STORE_CONFIG_SNAPSHOT_KEY_V1 = "store_config_v1"

// RedisStoreDAO persists store availability settings in Redis.
type RedisStoreDAO struct {
	client db.RedisClient
}

// NewRedisStoreDAO initializes a RedisStoreDAO with the Redis client.
func NewRedisStoreDAO(client db.RedisClient) *RedisStoreDAO {
	return &RedisStoreDAO{client: client}
}

// SetClosureOverride stores the manual closure override.
func (dao *RedisStoreDAO) SetClosureOverride(ctx context.Context, o models.ClosureOverride) error {
	return dao.setJSON(ctx, STORE_CLOSURE_KEY_V1, o)
}

// GetClosureOverride returns the stored override, or nil when none is set.
func (dao *RedisStoreDAO) GetClosureOverride(ctx context.Context) (*models.ClosureOverride, error) {
	var o models.ClosureOverride
	found, err := dao.getJSON(ctx, STORE_CLOSURE_KEY_V1, &o)
	if err != nil || !found {
		return nil, err
	}
	return &o, nil
}

// DeleteClosureOverride removes the manual closure override.
func (dao *RedisStoreDAO) DeleteClosureOverride(ctx context.Context) error {
	if err := dao.client.Del(ctx, STORE_CLOSURE_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete closure override: %w", err)
	}
	return nil
}

// SetStoreSnapshot caches the last-known store config.
func (dao *RedisStoreDAO) SetStoreSnapshot(ctx context.Context, s models.StoreSnapshot) error {
	return dao.setJSON(ctx, STORE_CONFIG_SNAPSHOT_KEY_V1, s)
}

// GetStoreSnapshot returns the cached store config, or nil on a cache miss.
func (dao *RedisStoreDAO) GetStoreSnapshot(ctx context.Context) (*models.StoreSnapshot, error) {
	var s models.StoreSnapshot
	found, err := dao.getJSON(ctx, STORE_CONFIG_SNAPSHOT_KEY_V1, &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (dao *RedisStoreDAO) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := dao.client.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (dao *RedisStoreDAO) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(str), v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s JSON: %w", key, err)
	}
	return true, nil
}
