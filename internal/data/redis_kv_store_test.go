package data

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tijaniyah/companion/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestRedisKVStore_SetGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := setupTestRedis(t)
	defer client.Close()

	store := NewRedisKVStore(client, "companion:test:")
	ctx := context.Background()

	t.Run("contract", func(t *testing.T) {
		runKVContract(t, store)
	})

	t.Run("keys are prefixed and never expire", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "user", []byte(`{"id":"1"}`)))

		raw, err := client.Get(ctx, "companion:test:user").Result()
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"1"}`, raw)
		assert.Equal(t, int64(-1), int64(client.TTL(ctx, "companion:test:user").Val()))
	})

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, store.Health(ctx))
	})
}
