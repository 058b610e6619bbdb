package config

import (
	"fmt"
	"time"

	"github.com/bookhubb/bookhub/internal/common"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the BookHub CLI.
type Config struct {
	APIBaseURL     string
	StoreBackend   string
	DataDir        string
	RedisURL       string
	CredentialKey  string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://bookhubb-jnsr.onrender.com"
	c.StoreBackend = BackendSQLite
	c.DataDir = "data"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.CredentialKey = common.CredentialKey
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	if c.CredentialKey == "" {
		return fmt.Errorf("credential key is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
