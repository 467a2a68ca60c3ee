package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Equal(t, "8000", GetConfig("APP_PORT"))
		assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
		assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
	})

	t.Run("YAML File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db\nJWT_SECRET: s3cret\n"), 0o600))

		LoadConfigFrom(path)
		assert.Equal(t, "db", GetConfig("DB_HOST"))
		assert.Equal(t, "s3cret", GetConfig("JWT_SECRET"))
		assert.Equal(t, "5432", GetConfig("DB_PORT"))
	})

	t.Run("Environment Overrides File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"9000\"\n"), 0o600))
		t.Setenv("APP_PORT", "9999")

		LoadConfigFrom(path)
		assert.Equal(t, "9999", GetConfig("APP_PORT"))
	})
}
