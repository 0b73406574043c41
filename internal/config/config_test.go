package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PANTRYPAL_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite3", cfg.Database.Driver)
	require.Equal(t, filepath.Join(home, ".local", "share", "pantrypal", "pantrypal.db"), cfg.Database.Path)
	require.Equal(t, 5*time.Second, cfg.Database.Timeout)
	require.Empty(t, cfg.User.Name)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PANTRYPAL_CONFIG", "")
	t.Setenv("PANTRYPAL_USER_NAME", "ola")
	t.Setenv("PANTRYPAL_DATABASE_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ola", cfg.User.Name)
	require.Equal(t, 250*time.Millisecond, cfg.Database.Timeout)
}

func TestSaveUserKeepsFileValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, SaveUser(path, "kari"))
	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "kari", got.User.Name)

	require.NoError(t, os.WriteFile(path, []byte("[database]\ntimeout = \"2s\"\n\n[user]\nname = \"kari\"\n"), 0o644))
	t.Setenv("PANTRYPAL_LOG_LEVEL", "debug")
	require.NoError(t, SaveUser(path, "ola"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "debug")
	require.NotContains(t, string(raw), "level")

	t.Setenv("PANTRYPAL_LOG_LEVEL", "")
	got, err = LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ola", got.User.Name)
	require.Equal(t, 2*time.Second, got.Database.Timeout)
	require.Equal(t, "info", got.Log.Level)
}

func TestRejectsUnknownDriver(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PANTRYPAL_CONFIG", "")
	t.Setenv("PANTRYPAL_DATABASE_DRIVER", "oracle")
	_, err := Load()
	require.Error(t, err)
}

func TestPostgresNeedsDSN(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PANTRYPAL_CONFIG", "")
	t.Setenv("PANTRYPAL_DATABASE_DRIVER", "postgres")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("PANTRYPAL_DATABASE_DSN", "postgres://localhost/pantry")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.Database.Driver)
}
