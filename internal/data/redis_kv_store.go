package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKVStore implements ports.KeyValueStore on Redis. Keys are namespaced by prefix
// and never expire.
type RedisKVStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisKVStore creates a RedisKVStore using prefix for every key.
func NewRedisKVStore(client redis.UniversalClient, prefix string) *RedisKVStore {
	return &RedisKVStore{client: client, prefix: prefix}
}

// Get retrieves a value from Redis by key.
func (r *RedisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Key doesn't exist
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return result, nil
}

// Set stores a value in Redis without expiry.
func (r *RedisKVStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a key from Redis.
func (r *RedisKVStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Health checks the health of the Redis connection.
func (r *RedisKVStore) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
