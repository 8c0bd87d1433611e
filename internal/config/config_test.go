package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9000, "catalog_path": "", "log_level": "debug"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9000, "database_url": "postgres://file", "match_limit": 5}`)
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("MATCH_LIMIT", "20")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, 20, cfg.MatchLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080, MatchLimit: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080, CatalogPath: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}
