package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "planboard.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Empty(t, cfg.Roster)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PLANBOARD_SERVER_HOST", "127.0.0.1")
	t.Setenv("PLANBOARD_SERVER_PORT", "9090")
	t.Setenv("PLANBOARD_DB_PATH", "/tmp/board.db")
	t.Setenv("PLANBOARD_LOG_LEVEL", "debug")
	t.Setenv("PLANBOARD_TRANSPORT_MODE", "http")
	t.Setenv("PLANBOARD_ROSTER", "alice, bob,, carol ")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/board.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, []string{"alice", "bob", "carol"}, cfg.Roster)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PLANBOARD_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidTransportMode(t *testing.T) {
	t.Setenv("PLANBOARD_TRANSPORT_MODE", "websocket")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  host: 10.0.0.1
  port: 7070
db:
  path: data/planboard.db
transport:
  mode: http
roster:
  - alice
  - bob
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("PLANBOARD_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", cfg.Server.Host)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "data/planboard.db", cfg.DB.Path)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, []string{"alice", "bob"}, cfg.Roster)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("PLANBOARD_CONFIG_PATH", path)
	t.Setenv("PLANBOARD_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}
