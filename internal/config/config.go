package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Optional backends are selected by
// leaving their address empty: no DATABASE_URL means the in-memory store, no
// REDIS_ADDR means no search cache, no NATS_URL means no events.
type Config struct {
	HTTPPort       string        `mapstructure:"HTTP_PORT"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	NATSURL        string        `mapstructure:"NATS_URL"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	SearchCacheTTL time.Duration `mapstructure:"SEARCH_CACHE_TTL"`
	SeedPath       string        `mapstructure:"SEED_PATH"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFormat      string        `mapstructure:"LOG_FORMAT"`
}

// Load reads configuration from environment variables (a .env file, if any,
// is loaded by main before this runs).
func Load() (*Config, error) {
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("NATS_URL", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SEARCH_CACHE_TTL", "60s")
	viper.SetDefault("SEED_PATH", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}

	return &cfg, nil
}
