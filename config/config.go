package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend origin, timeouts and retry policy
//   - storage.go: Local key-value storage and Redis configuration
//   - auth.go: Offline account configuration
//   - log.go: Logging configuration
type AppConfig struct {
	// API client configuration
	API APIConfig `envPrefix:"API_"`

	// Storage configuration
	Storage StorageConfig `envPrefix:"STORAGE_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`

	// Offline account configuration
	Auth AuthConfig

	// Logging configuration
	Log LogConfig `envPrefix:"LOG_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Storage.Sanitize()
	c.Log.Sanitize()
}
