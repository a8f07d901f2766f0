// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAppEnv      = "APP_ENV"
	EnvAddr        = "SOURDOUGH_ADDR"
	EnvLogLevel    = "SOURDOUGH_LOG_LEVEL"
	EnvRedisAddr   = "REDIS_ADDR"
	EnvCacheTTL    = "SOURDOUGH_CACHE_TTL"
	EnvCacheMax    = "SOURDOUGH_CACHE_MAX_ENTRIES"
	EnvRateLimit   = "SOURDOUGH_RATE_LIMIT"
	EnvRateWindow  = "SOURDOUGH_RATE_WINDOW"
	EnvContentDir  = "SOURDOUGH_CONTENT_DIR"
	productionMode = "production"
)

type Config struct {
	Addr       string
	LogLevel   string
	RedisAddr  string // empty selects the in-memory cache
	CacheTTL   time.Duration
	CacheMax   int // entry cap of the in-memory cache
	RateLimit  int
	RateWindow time.Duration
	ContentDir string // empty selects the built-in content
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		LogLevel:   "info",
		CacheTTL:   time.Hour,
		CacheMax:   10_000,
		RateLimit:  5,
		RateWindow: time.Minute,
	}
}

// Load reads .env files (outside production) and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv(EnvAppEnv) != productionMode {
		// A missing .env is normal.
		_ = godotenv.Load(envFiles...)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, starting from Default.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			return cfg, fmt.Errorf("%s: unknown level %q", EnvLogLevel, v)
		}
	}
	if v, ok := lookup(EnvRedisAddr); ok {
		cfg.RedisAddr = v
	}
	if v, ok := lookup(EnvContentDir); ok {
		cfg.ContentDir = v
	}

	var err error
	if cfg.CacheTTL, err = duration(lookup, EnvCacheTTL, cfg.CacheTTL); err != nil {
		return cfg, err
	}
	if cfg.RateWindow, err = duration(lookup, EnvRateWindow, cfg.RateWindow); err != nil {
		return cfg, err
	}
	if cfg.RateWindow <= 0 {
		return cfg, fmt.Errorf("%s must be positive", EnvRateWindow)
	}

	if cfg.RateLimit, err = positiveInt(lookup, EnvRateLimit, cfg.RateLimit); err != nil {
		return cfg, err
	}
	if cfg.CacheMax, err = positiveInt(lookup, EnvCacheMax, cfg.CacheMax); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func duration(lookup func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return def, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

func positiveInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def, fmt.Errorf("%s: want a positive integer, got %q", key, v)
	}
	return n, nil
}
