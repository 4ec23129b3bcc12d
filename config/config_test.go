package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))
	cfg.Sanitize()

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.RetryLimit)
	assert.Equal(t, time.Second, cfg.API.RetryBackoff)
	assert.Equal(t, []int{503}, cfg.API.RetryStatuses)
	assert.Equal(t, []int{401}, cfg.API.AuthFailureStatuses)

	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "state.json", filepath.Base(cfg.Storage.Path))
	assert.Equal(t, "companion:", cfg.Storage.KeyPrefix)

	assert.True(t, cfg.Auth.OfflineAccountsEnabled)
	assert.True(t, cfg.Auth.SeedDemoAccounts)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestAppConfig_Overrides(t *testing.T) {
	var cfg AppConfig
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{
		"API_BASE_URL":               "https://api.example.org/v1/",
		"API_RETRY_LIMIT":            "-3",
		"API_RETRY_STATUSES":         "502,503,200",
		"STORAGE_DRIVER":             "Redis",
		"STORAGE_PATH":               "/tmp/state.json",
		"REDIS_DB":                   "4",
		"OFFLINE_ACCOUNTS_ENABLED":   "false",
		"OFFLINE_SEED_DEMO_ACCOUNTS": "false",
		"LOG_LEVEL":                  "DEBUG",
		"LOG_FORMAT":                 "text",
	}})
	require.NoError(t, err)
	cfg.Sanitize()

	assert.Equal(t, "https://api.example.org/v1", cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.RetryLimit)
	assert.Equal(t, []int{502, 503}, cfg.API.RetryStatuses)
	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.Path)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.False(t, cfg.Auth.OfflineAccountsEnabled)
	assert.False(t, cfg.Auth.SeedDemoAccounts)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestStorageDriver_RejectsUnknown(t *testing.T) {
	var cfg AppConfig
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{"STORAGE_DRIVER": "sqlite"}})
	assert.Error(t, err)
}
