package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// DefaultPageSize is used whenever a listing request omits one.
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE, default=10"`
	// ViewWorkers sizes the view-count dispatcher pool.
	ViewWorkers int `env:"VIEW_WORKERS, default=4"`

	Store StoreConfig
}

// StoreConfig selects and configures the key-value backend.
type StoreConfig struct {
	// Backend is "redis" or "mongo".
	Backend string `env:"STORE_BACKEND, default=redis"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=kusina_delights"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
