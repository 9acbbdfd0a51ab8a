package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultAddress, cfg.Address)
		assert.Equal(t, DefaultMaxScenarios, cfg.MaxScenarios)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultAddress, cfg.Address)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.yaml")
		require.NoError(t, os.WriteFile(path, []byte("address: \":9999\"\nlogLevel: debug\nmaxScenarios: 500\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Address)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 500, cfg.MaxScenarios)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logLevel: warn\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultAddress, cfg.Address)
		assert.Equal(t, DefaultMaxScenarios, cfg.MaxScenarios)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("malformed file errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.yaml")
		require.NoError(t, os.WriteFile(path, []byte("address: [unclosed"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
