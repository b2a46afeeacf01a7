package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Snapshot SnapshotConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Booking  BookingConfig
}

// SnapshotConfig selects the durable-storage backend for the full-state
// snapshot written after every mutation.
type SnapshotConfig struct {
	Backend string `env:"SNAPSHOT_BACKEND, default=file"` // "file" or "mongo"
	Path    string `env:"SNAPSHOT_PATH,    default=./calendar_data.json"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=turnover"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// TokenCache enables the Redis token → user lookaside index.
	TokenCache bool `env:"REDIS_TOKEN_CACHE, default=false"`
}

type AuthConfig struct {
	// HashScheme is "sha256" (legacy-compatible default) or "bcrypt"
	// (explicit opt-in hardening; existing sha256 hashes stop verifying).
	HashScheme string `env:"AUTH_HASH_SCHEME, default=sha256"`
}

type BookingConfig struct {
	// ConfirmOverridesCancel keeps the historical behaviour where a
	// cancelled booking flips back to confirmed once both parties confirm.
	ConfirmOverridesCancel bool `env:"CONFIRM_OVERRIDES_CANCEL, default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
