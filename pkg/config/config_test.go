package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.API.Listen)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 200, cfg.MongoDB.BatchSize)
	assert.Equal(t, "neo4j", cfg.Neo4j.Database)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
input: data/moscow.txt
log:
  format: json
  debug: true
api:
  listen: ":9090"
redis:
  enabled: true
  address: "cache:6380"
  expiration: PT5M
mongodb:
  database: catalogue
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/moscow.txt", cfg.Input)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, ":9090", cfg.API.Listen)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6380", cfg.Redis.Address)
	assert.Equal(t, "catalogue", cfg.MongoDB.Database)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.MongoDB.Connection)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TRAVIGO_API_LISTEN", ":7000")
	t.Setenv("TRAVIGO_REDIS_ADDRESS", "redis:6379")
	t.Setenv("TRAVIGO_REDIS_DATABASE", "3")

	cfg, err := Load(writeConfig(t, "api:\n  listen: \":9090\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.API.Listen)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 3, cfg.Redis.Database)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad log format": "log:\n  format: xml\n",
		"bad batch size": "mongodb:\n  batchsize: 0\n",
		"bad address":    "redis:\n  address: nowhere\n",
		"not yaml":       "api: [",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadBadRedisDatabase(t *testing.T) {
	t.Setenv("TRAVIGO_REDIS_DATABASE", "first")

	_, err := Load("")
	assert.Error(t, err)
}

func TestExpirationDuration(t *testing.T) {
	expiration, err := RedisConfig{Expiration: "PT90M"}.ExpirationDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, expiration)

	expiration, err = RedisConfig{Expiration: "P1D"}.ExpirationDuration()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, expiration)

	_, err = RedisConfig{Expiration: "ninety minutes"}.ExpirationDuration()
	assert.Error(t, err)
}
