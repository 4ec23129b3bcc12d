package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StorageDriver selects the key-value store backing persisted client state.
type StorageDriver string

const (
	// StorageDriverFile keeps all state in one JSON document on disk.
	StorageDriverFile StorageDriver = "file"
	// StorageDriverRedis keeps state in Redis under a key prefix.
	StorageDriverRedis StorageDriver = "redis"
	// StorageDriverMemory keeps state in memory for the life of the process.
	StorageDriverMemory StorageDriver = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageDriver.
func (d *StorageDriver) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "file", "redis", "memory":
		*d = StorageDriver(v)
		return nil
	default:
		return fmt.Errorf("invalid StorageDriver: %q (valid options: file, redis, memory)", v)
	}
}

// StorageConfig contains local persistence configuration.
type StorageConfig struct {
	Driver StorageDriver `env:"DRIVER" envDefault:"file"`

	// Path is the state file used by the file driver. Defaults to ~/.companion/state.json.
	Path string `env:"PATH"`

	// KeyPrefix namespaces keys in Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"companion:"`
}

// Sanitize resolves the default state file location.
func (c *StorageConfig) Sanitize() {
	if c.Driver == "" {
		c.Driver = StorageDriverFile
	}
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Path = defaultStatePath()
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".companion", "state.json")
	}
	return filepath.Join(home, ".companion", "state.json")
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:""`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}
