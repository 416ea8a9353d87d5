package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_EXPORT_DIR", t.TempDir())

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, int64(42), cfg.App.Seed)
	assert.InDelta(t, 0.95, cfg.App.ServiceLevel, 1e-9)
	assert.False(t, cfg.Cache.Enabled)
}

// The log level is its own setting, not the gin mode: a release-mode
// server must still carry a level zerolog can parse.
func TestLogLevelParsesAsZerologLevel(t *testing.T) {
	cfg := Load()

	_, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	require.NoError(t, err)
}

func TestLoadReturnsSameInstance(t *testing.T) {
	assert.Same(t, Load(), Load())
}
