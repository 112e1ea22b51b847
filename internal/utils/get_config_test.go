package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "APP_PORT: \"9090\"\nDB_DRIVER: postgres\n")
	require.NoError(t, LoadConfig(path))
	t.Cleanup(func() { config = Config{} })

	t.Setenv("APP_PORT", "7070")
	t.Setenv("DB_PATH", "/tmp/env.db")

	t.Run("file wins over environment", func(t *testing.T) {
		assert.Equal(t, "9090", GetConfig("APP_PORT"))
	})

	t.Run("environment wins over default", func(t *testing.T) {
		assert.Equal(t, "/tmp/env.db", GetConfig("DB_PATH"))
	})

	t.Run("default when unset", func(t *testing.T) {
		assert.Equal(t, "memory", GetConfig("RECIPE_STORE"))
		assert.Equal(t, "", GetConfig("SMTP_HOST"))
	})

	t.Run("file value", func(t *testing.T) {
		assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
	})
}

func TestLoadConfigMissingFile(t *testing.T) {
	require.NoError(t, LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, "8000", GetConfig("APP_PORT"))
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "APP_PORT: [unterminated\n")
	assert.Error(t, LoadConfig(path))
	config = Config{}
}

func TestGetConfigInt(t *testing.T) {
	config = Config{}

	t.Setenv("RATE_LIMIT_MAX", "25")
	assert.Equal(t, 25, GetConfigInt("RATE_LIMIT_MAX", 10))

	t.Setenv("RATE_LIMIT_MAX", "muitos")
	assert.Equal(t, 3, GetConfigInt("RATE_LIMIT_MAX", 3))
}
