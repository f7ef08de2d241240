package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all environment variables for the storefront BFF.
type Config struct {
	Port           string        // Service port (default: 8086)
	CatalogBaseURL string        // Remote catalog API base URL (required)
	RedisURL       string        // Redis connection URL
	AllowedOrigins []string      // CORS origins for the storefront
	CatalogTimeout time.Duration // Per-request timeout against the catalog
	SearchDebounce time.Duration // Quiescence window for search sessions
	CacheTTL       time.Duration // Redis cache TTL
}

// LoadConfig loads environment variables into a Config struct and validates
// them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           os.Getenv("PORT"),
		CatalogBaseURL: strings.TrimRight(os.Getenv("CATALOG_API_BASE_URL"), "/"),
		RedisURL:       os.Getenv("REDIS_URL"),
		CatalogTimeout: durationEnv("CATALOG_TIMEOUT_MS", 10*time.Second),
		SearchDebounce: durationEnv("SEARCH_DEBOUNCE_MS", 250*time.Millisecond),
		CacheTTL:       durationEnv("CACHE_TTL_MS", 10*time.Minute),
	}

	if cfg.Port == "" {
		cfg.Port = "8086"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://redis:6379"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	// Validate required fields
	if cfg.CatalogBaseURL == "" {
		return nil, fmt.Errorf("CATALOG_API_BASE_URL is required")
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
