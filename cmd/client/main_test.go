package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chirp/internal/client/cli"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chirp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://file:3000\nlog_level: warn\n"), 0o600))

	cfg, err := loadConfig(cli.Options{
		ConfigPath: path,
		ServerURL:  "http://flag:3000",
		DBPath:     filepath.Join(t.TempDir(), "chirp.db"),
	})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3000", cfg.ServerURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(cli.Options{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	c, cleanup, err := setup(t.Context(), cli.Options{
		ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
		DBPath:     filepath.Join(t.TempDir(), "data", "chirp.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	cleanup()
}
