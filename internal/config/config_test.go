package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file", func(t *testing.T) {
		// Given: a config file overriding a few keys
		path := writeConfig(t, `
log-level: debug
env: production
reconnect-delay: 250ms
http-port: "9090"
redis:
  host: cache
history:
  limit: 5
sound:
  tap: true
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file wins and the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 250*time.Millisecond, conf.ReconnectDelay)
		assert.Equal(t, 5*time.Second, conf.AckTimeout)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5, conf.History.Limit)
		assert.False(t, conf.History.Disabled)
		assert.False(t, conf.Sound.Muted)
		assert.True(t, conf.Sound.Tap)
		assert.Equal(t, "wss://tictaptoe-socket.onrender.com/ws", conf.GameServerURL())
	})

	t.Run("Missing file uses the environment", func(t *testing.T) {
		// Given: no config file and a server set in the environment
		t.Setenv("SERVER_URL", "ws://example.test/ws")
		t.Setenv("START_ROUTE", "/local")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment and the defaults are used
		require.NoError(t, err)
		assert.Equal(t, "ws://example.test/ws", conf.GameServerURL())
		assert.Equal(t, "/local", conf.StartRoute)
		assert.Equal(t, 5, conf.ReconnectAttempts)
		assert.Empty(t, conf.HTTPPort)
	})

	t.Run("Malformed file", func(t *testing.T) {
		// Given: a file that is not YAML
		path := writeConfig(t, "log-level: [")

		// When: the config is loaded
		_, err := Load(path)

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
