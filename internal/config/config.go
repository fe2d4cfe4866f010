package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	SecretKey     string
	DatabaseURL   string
	Port          string
	GinMode       string
	SecureCookies bool
}

func Load() (*Config, error) {
	cfg := &Config{
		SecretKey:     os.Getenv("SECRET_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		GinMode:       os.Getenv("GIN_MODE"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required, e.g. host=localhost user=blog dbname=blog port=5432 sslmode=disable")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
