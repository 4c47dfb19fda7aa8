package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "boston_suites.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"
)

type Config struct {
	Addr      string
	DSN       string
	JWTSecret string
	JWTTTL    time.Duration
	AppEnv    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:      getEnv("ADDR", defaultAddr),
		DSN:       getEnv("DATABASE_URL", defaultDSN),
		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		AppEnv:    getEnv("APP_ENV", "development"),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
