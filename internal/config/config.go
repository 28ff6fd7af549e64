package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	Ollama      OllamaConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

// ServerConfig; Timeout must stay above Ollama.GenerateTimeout or the
// middleware cuts generation off before the upstream call finishes.
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"320s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
	MaxFileSize     int64         `env:"SERVER_MAX_FILE_SIZE" envDefault:"2097152"`
}

type OllamaConfig struct {
	BaseURL         string        `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	DefaultModel    string        `env:"OLLAMA_DEFAULT_MODEL" envDefault:"codellama:7b"`
	GenerateTimeout time.Duration `env:"OLLAMA_GENERATE_TIMEOUT" envDefault:"300s"`
	ListTimeout     time.Duration `env:"OLLAMA_LIST_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
