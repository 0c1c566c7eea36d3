package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".reque3sted", "config.json")

	cfg := &Config{
		Theme: "dark",
		Store: &StoreConfig{Backend: BackendSQLite, Path: "/tmp/users.db"},
		Latency: &LatencyConfig{
			InsertMS: 5, UpdateMS: 6, DeleteMS: 7, GetMS: 8,
		},
		Logging: &LoggingConfig{DebugMode: true, Level: "debug"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", loaded.Theme)
	assert.Equal(t, BackendSQLite, loaded.Store.Backend)
	assert.Equal(t, "/tmp/users.db", loaded.Store.Path)
	assert.Equal(t, 5*time.Millisecond, loaded.InsertLatency())
	assert.Equal(t, 6*time.Millisecond, loaded.UpdateLatency())
	assert.Equal(t, 7*time.Millisecond, loaded.DeleteLatency())
	assert.Equal(t, 8*time.Millisecond, loaded.GetLatency())
	require.NotNil(t, loaded.Logging)
	assert.True(t, loaded.Logging.DebugMode)
}

func TestLatency_DemoDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 500*time.Millisecond, cfg.InsertLatency())
	assert.Equal(t, 500*time.Millisecond, cfg.UpdateLatency())
	assert.Equal(t, 500*time.Millisecond, cfg.DeleteLatency())
	assert.Equal(t, time.Second, cfg.GetLatency())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REQUE3STED_THEME", "dark")
	t.Setenv("REQUE3STED_STORE_BACKEND", BackendSQLite)
	t.Setenv("REQUE3STED_DB_PATH", "/tmp/override.db")
	t.Setenv("REQUE3STED_INSERT_LATENCY_MS", "11")
	t.Setenv("REQUE3STED_UPDATE_LATENCY_MS", "12")
	t.Setenv("REQUE3STED_DELETE_LATENCY_MS", "13")
	t.Setenv("REQUE3STED_GET_LATENCY_MS", "25")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
	assert.Equal(t, 11*time.Millisecond, cfg.InsertLatency())
	assert.Equal(t, 12*time.Millisecond, cfg.UpdateLatency())
	assert.Equal(t, 13*time.Millisecond, cfg.DeleteLatency())
	assert.Equal(t, 25*time.Millisecond, cfg.GetLatency())
}

func TestEnvOverrides_MalformedLatencyIgnored(t *testing.T) {
	t.Setenv("REQUE3STED_GET_LATENCY_MS", "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.GetLatency())
}

func TestDBPath_Fallback(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/ws", ".reque3sted", "users.db"), cfg.DBPath("/ws"))

	cfg.Store.Path = "/custom.db"
	assert.Equal(t, "/custom.db", cfg.DBPath("/ws"))
}
