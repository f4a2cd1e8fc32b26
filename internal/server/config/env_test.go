package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("GAMESLIB_STORAGE", "memory")
	t.Setenv("GAMESLIB_TOKEN_TTL", "2h")
	t.Setenv("GAMESLIB_BLACKLIST_SWEEP_INTERVAL", "0s")
	t.Setenv("GAMESLIB_LOG_FORMAT", "text")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 2*time.Hour, cfg.SignInTokenTTL)
	assert.Equal(t, time.Duration(0), cfg.BlacklistSweepInterval)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":3000", cfg.EndpointAddr, "unset variables keep their value")
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("GAMESLIB_SHUTDOWN_TIMEOUT", "never")
	assert.Error(t, parseEnv(&Config{}))
}
