// Package config загружает настройки клиента из YAML файла и переменных окружения
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvServerURL   = "CHIRP_SERVER_URL"
	EnvDBPath      = "CHIRP_DB_PATH"
	EnvLogLevel    = "CHIRP_LOG_LEVEL"
	EnvMaxAttempts = "CHIRP_MAX_ATTEMPTS"
)

// Config настройки клиента
type Config struct {
	ServerURL   string            `yaml:"server_url"`
	DBPath      string            `yaml:"db_path"`
	LogLevel    string            `yaml:"log_level"`
	Retry       RetryConfig       `yaml:"retry"`
	SideEffects SideEffectsConfig `yaml:"side_effects"`
	Timeout     time.Duration     `yaml:"timeout"`
}

// RetryConfig политика повторов запросов
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BackoffBase time.Duration `yaml:"backoff_base"`
}

// SideEffectsConfig ограничения фоновых действий (уведомления о лайках)
type SideEffectsConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Default возвращает настройки по умолчанию
func Default() *Config {
	return &Config{
		ServerURL: "http://localhost:3000",
		DBPath:    defaultDBPath(),
		LogLevel:  "info",
		Timeout:   30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			BackoffBase: time.Second,
		},
		SideEffects: SideEffectsConfig{
			MaxConcurrent: 4,
			Timeout:       15 * time.Second,
		},
	}
}

// Load читает настройки: значения по умолчанию, затем файл (если path не пуст
// и файл существует), затем переменные окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// работаем на значениях по умолчанию
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvServerURL); ok && v != "" {
		c.ServerURL = v
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvMaxAttempts); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxAttempts, err)
		}
		c.Retry.MaxAttempts = n
	}
	return nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.ServerURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1")
	}
	if c.Retry.BackoffBase < 0 {
		return fmt.Errorf("retry.backoff_base must not be negative")
	}
	if c.SideEffects.MaxConcurrent < 1 {
		return fmt.Errorf("side_effects.max_concurrent must be at least 1")
	}
	if c.SideEffects.Timeout <= 0 {
		return fmt.Errorf("side_effects.timeout must be positive")
	}
	return nil
}

// SlogLevel переводит LogLevel в уровень slog
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "chirp.db"
	}
	return filepath.Join(dir, "chirp", "chirp.db")
}
