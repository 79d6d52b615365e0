package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.BackoffBase)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server_url: https://chirp.example.com/api
db_path: /tmp/chirp-test.db
log_level: debug
timeout: 5s
retry:
  max_attempts: 5
  backoff_base: 250ms
side_effects:
  max_concurrent: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://chirp.example.com/api", cfg.ServerURL)
	assert.Equal(t, "/tmp/chirp-test.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.BackoffBase)
	assert.Equal(t, 2, cfg.SideEffects.MaxConcurrent)
	// не указано в файле
	assert.Equal(t, 15*time.Second, cfg.SideEffects.Timeout)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().ServerURL, cfg.ServerURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "retry: [not, a, map")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server_url: http://from-file:3000\n")

	t.Setenv(EnvServerURL, "http://from-env:4000")
	t.Setenv(EnvDBPath, "/tmp/env.db")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvMaxAttempts, "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:4000", cfg.ServerURL)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7, cfg.Retry.MaxAttempts)
}

func TestLoad_InvalidEnvAttempts(t *testing.T) {
	t.Setenv(EnvMaxAttempts, "many")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "relative server url", modify: func(c *Config) { c.ServerURL = "localhost" }},
		{name: "empty db path", modify: func(c *Config) { c.DBPath = "" }},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "verbose" }},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }},
		{name: "zero attempts", modify: func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{name: "negative backoff", modify: func(c *Config) { c.Retry.BackoffBase = -time.Second }},
		{name: "no side effect slots", modify: func(c *Config) { c.SideEffects.MaxConcurrent = 0 }},
		{name: "zero side effect timeout", modify: func(c *Config) { c.SideEffects.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
