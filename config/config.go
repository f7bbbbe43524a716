package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Environments
const ENV_PROD = "prod"
const ENV_LOCAL = "local"

// Bakery backend
const BAKERY_CONFIG_ENDPOINT = "/config"
const BAKERY_ORDERS_ENDPOINT = "/orders"

// Store status refresher config
const STORE_STATUS_REFRESH_INTERVAL_SECONDS = 60

// HTTP server config
const SHUTDOWN_TIMEOUT_SECONDS = 5
const MAX_PROXY_BODY_BYTES = 1 << 20

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STORE_CONFIG_RESPONSE_RESOURCE = "store_config_response.json"

// Config is read from the environment once at startup.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"prod"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":8080"`

	RedisAddress  string `env:"REDIS_ADDRESS" envDefault:"redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	BakeryBackendURL     string        `env:"BAKERY_BACKEND_URL" envDefault:"http://localhost:8000/api"`
	BakeryBackendTimeout time.Duration `env:"BAKERY_BACKEND_TIMEOUT" envDefault:"10s"`

	StoreTimezone         string        `env:"STORE_TIMEZONE" envDefault:"Asia/Jakarta"`
	StatusRefreshInterval time.Duration `env:"STORE_STATUS_REFRESH_INTERVAL" envDefault:"60s"`
	DefaultLanguage       string        `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StatusRefreshInterval <= 0 {
		cfg.StatusRefreshInterval = STORE_STATUS_REFRESH_INTERVAL_SECONDS * time.Second
	}
	return &cfg, nil
}

// Location returns the store's time zone, or UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	if c.StoreTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.StoreTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
