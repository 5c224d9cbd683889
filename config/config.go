package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string        `env:"PORT" envDefault:"4000"`
	GinMode     string        `env:"GIN_MODE" envDefault:"debug"`
	DatabaseURL string        `env:"DATABASE_URL"`
	DBHost      string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string        `env:"DB_PORT" envDefault:"5432"`
	DBUser      string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string        `env:"DB_PASSWORD"`
	DBName      string        `env:"DB_NAME" envDefault:"techxchange"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	RedisAddr   string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	NewsTTL     time.Duration `env:"NEWS_TTL" envDefault:"5m"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
