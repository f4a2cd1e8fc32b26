package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":            "www.example:9000",
		"storage_backend":          "mongo",
		"database_dsn":             "postgres://db",
		"mongo_uri":                "mongodb://mongo:27017",
		"mongo_database":           "games",
		"secret_key":               "my_secret_key",
		"sign_in_token_ttl":        "24h",
		"blacklist_sweep_interval": 60000000000,
		"shutdown_timeout":         "3s",
		"log_level":                "warn",
		"log_format":               "text",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"--config", path}))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "mongo", cfg.StorageBackend)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
		assert.Equal(t, "games", cfg.MongoDatabase)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 24*time.Hour, cfg.SignInTokenTTL)
		assert.Equal(t, time.Minute, cfg.BlacklistSweepInterval)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("short flag among other flags", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-a", ":1", "-c", path, "--log-level", "debug"}))
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{EndpointAddr: "defaults:1234", SignInTokenTTL: time.Minute}
		require.NoError(t, parseJSON(cfg, []string{"-a", ":1"}))
		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, time.Minute, cfg.SignInTokenTTL)
	})

	t.Run("missing fields keep existing values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"secret_key": "only-secret"})
		cfg := &Config{EndpointAddr: ":3000", SignInTokenTTL: time.Hour}
		require.NoError(t, parseJSON(cfg, []string{"-c", partial}))
		assert.Equal(t, ":3000", cfg.EndpointAddr)
		assert.Equal(t, time.Hour, cfg.SignInTokenTTL)
		assert.Equal(t, "only-secret", cfg.SecretKey)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		assert.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, parseJSON(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})

	t.Run("bad duration", func(t *testing.T) {
		bad := writeTempJSON(t, map[string]any{"sign_in_token_ttl": "forever"})
		assert.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})
}
