package configs

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string        `env:"POS_DB_PATH" envDefault:"warung.db"`
	CacheTTL time.Duration `env:"POS_CACHE_TTL" envDefault:"0s"`
	LogLevel string        `env:"POS_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads an optional .env file, then the process environment.
// The shell that owns the process entry point calls this once at startup.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}
