package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Storage backend selectors.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StorageBackend selects where the user directory and session live:
	// file, memory, redis or mongo.
	StorageBackend string `env:"STORAGE_BACKEND, default=file"`
	StoragePath    string `env:"STORAGE_PATH,    default=mykare-auth.json"`

	// PolicyPath optionally points at a YAML route-policy file; empty means
	// the built-in defaults.
	PolicyPath string `env:"POLICY_PATH"`

	// SessionSecret, when set, switches the persisted session to a signed
	// encoding so local tampering is detectable.
	SessionSecret string `env:"SESSION_SECRET"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mykare_auth"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
