package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url":    "http://json.example",
		"store_backend":   "memory",
		"request_timeout": "10s",
	})

	yamlPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
api_base_url: http://yaml.example
store_backend: redis
redis_url: redis://cache:6379/2
request_timeout: 2500000000
log_level: debug
`), 0o600))

	t.Run("loads JSON from -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", jsonPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		want := &Config{}
		want.LoadDefaults()
		want.APIBaseURL = "http://json.example"
		want.StoreBackend = "memory"
		want.RequestTimeout = 10 * time.Second
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("loads YAML from -c", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", yamlPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "http://yaml.example", cfg.APIBaseURL)
		assert.Equal(t, BackendRedis, cfg.StoreBackend)
		assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
		assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "data", cfg.DataDir, "unset keys keep their value")
	})

	t.Run("no config flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults", RequestTimeout: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "http://defaults", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("flags override file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", jsonPath, "-a", "http://flag.example"}

		cfg := LoadConfig()
		assert.Equal(t, "http://flag.example", cfg.APIBaseURL)
		assert.Equal(t, BackendMemory, cfg.StoreBackend)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.yml")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
