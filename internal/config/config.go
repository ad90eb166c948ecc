package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vytor/lichessexport/internal/logger"
)

// Backend names accepted by LICHESS_BACKEND.
const (
	BackendHTTP = "http"
	BackendMock = "mock"
)

type Config struct {
	BaseURL           string
	Token             string
	Timeout           time.Duration
	Backend           string
	LogLevel          string
	ExportWorkerCount int
	ExportQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the tool still runs when .env is absent.
	_ = godotenv.Load()

	return Config{
		BaseURL:           envOr("LICHESS_BASE_URL", "https://lichess.org"),
		Token:             os.Getenv("LICHESS_TOKEN"),
		Timeout:           envDurationOr("LICHESS_TIMEOUT", 15*time.Second),
		Backend:           strings.ToLower(envOr("LICHESS_BACKEND", BackendHTTP)),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		ExportWorkerCount: envIntOr("EXPORT_WORKER_COUNT", 2),
		ExportQueueSize:   envIntOr("EXPORT_QUEUE_SIZE", 16),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.BaseURL == "" {
		errs = append(errs, errors.New("LICHESS_BASE_URL cannot be empty"))
	} else if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("LICHESS_BASE_URL must be an absolute URL, got %q", c.BaseURL))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("LICHESS_TIMEOUT must be positive, got %v", c.Timeout))
	}
	if c.Backend != BackendHTTP && c.Backend != BackendMock {
		errs = append(errs, fmt.Errorf("LICHESS_BACKEND must be %q or %q, got %q", BackendHTTP, BackendMock, c.Backend))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.ExportWorkerCount < 1 {
		errs = append(errs, fmt.Errorf("EXPORT_WORKER_COUNT must be at least 1, got %d", c.ExportWorkerCount))
	}
	if c.ExportQueueSize < 1 {
		errs = append(errs, fmt.Errorf("EXPORT_QUEUE_SIZE must be at least 1, got %d", c.ExportQueueSize))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
