package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bookhubb/bookhub/internal/flagx"
	"github.com/bookhubb/bookhub/internal/timex"
)

// FileConfig is the on-disk shape of the configuration. Intervals use
// timex.Duration so files may say "10s" or give nanoseconds.
type FileConfig struct {
	APIBaseURL     string          `json:"api_base_url" yaml:"api_base_url"`
	StoreBackend   string          `json:"store_backend" yaml:"store_backend"`
	DataDir        string          `json:"data_dir" yaml:"data_dir"`
	RedisURL       string          `json:"redis_url" yaml:"redis_url"`
	CredentialKey  string          `json:"credential_key" yaml:"credential_key"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with values from the file named by -c or -config.
// It panics when the file cannot be read or decoded.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.APIBaseURL, fc.APIBaseURL)
	overlay(&cfg.StoreBackend, fc.StoreBackend)
	overlay(&cfg.DataDir, fc.DataDir)
	overlay(&cfg.RedisURL, fc.RedisURL)
	overlay(&cfg.CredentialKey, fc.CredentialKey)
	overlay(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
