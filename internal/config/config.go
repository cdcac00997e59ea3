package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the process needs from the environment.
// godotenv is loaded in main before this runs, so a local .env works too.
type Config struct {
	Port         string
	Env          string // "development" or "production"
	DatabaseDSN  string
	JWTSecret    string
	Origins      []string
	CookieSecure bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         getenv("PORT", "5000"),
		Env:          getenv("SERVER_ENV", "development"),
		DatabaseDSN:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_ACCESS_SECRET"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is not set")
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.Origins = append(cfg.Origins, o)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
