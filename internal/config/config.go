// Package config reads service settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything cmd/server needs to wire the service.
type Config struct {
	Port              string
	AppEnv            string
	GoogleAPIKey      string
	DirectionsBaseURL string
	CacheBackend      string
	DBPath            string
	DatabaseURL       string
	RedisURL          string
	CacheTTL          time.Duration
	SeedPath          string
	MaxWaypoints      int
}

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheSqlite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
	CacheNone     = "none"
)

// LoadDotEnv loads .env into the process environment. A missing file is not an
// error; it reports whether a file was loaded.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	cfg := Config{
		Port:              Get("PORT", "8080"),
		AppEnv:            Get("APP_ENV", "production"),
		GoogleAPIKey:      strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		DirectionsBaseURL: Get("DIRECTIONS_BASE_URL", ""),
		CacheBackend:      strings.ToLower(Get("CACHE_BACKEND", CacheSqlite)),
		DBPath:            Get("DB_PATH", "data/app.db"),
		DatabaseURL:       Get("DATABASE_URL", ""),
		RedisURL:          Get("REDIS_URL", ""),
		SeedPath:          Get("SEED_PATH", "data/seeds/routes.json"),
	}

	var err error
	if cfg.CacheTTL, err = GetDuration("CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.MaxWaypoints, err = GetInt("MAX_WAYPOINTS", 23); err != nil {
		return Config{}, err
	}

	if cfg.GoogleAPIKey == "" {
		return Config{}, errors.New("config: GOOGLE_API_KEY is required")
	}
	if cfg.MaxWaypoints < 1 || cfg.MaxWaypoints > 23 {
		return Config{}, fmt.Errorf("config: MAX_WAYPOINTS must be between 1 and 23, got %d", cfg.MaxWaypoints)
	}

	switch cfg.CacheBackend {
	case CacheSqlite, CacheNone:
	case CachePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("config: DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
	case CacheRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("config: REDIS_URL is required for CACHE_BACKEND=redis")
		}
	default:
		return Config{}, fmt.Errorf("config: unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}

	return cfg, nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// GetDuration accepts Go duration syntax ("90s", "24h").
func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
