// Package config loads and saves reque3sted configuration from
// .reque3sted/config.json. This is the single source of truth for
// runtime settings; environment variables may override individual
// fields for scripting and CI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all reque3sted configuration.
type Config struct {
	// Theme for the TUI ("light" or "dark")
	Theme string `json:"theme,omitempty"`

	// Store backend selection and location
	Store *StoreConfig `json:"store,omitempty"`

	// Simulated latency for the in-memory backend
	Latency *LatencyConfig `json:"latency,omitempty"`

	// Logging configuration (mirrored by internal/logging)
	Logging *LoggingConfig `json:"logging,omitempty"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Backend is "memory" (default, demo latency) or "sqlite"
	Backend string `json:"backend,omitempty"`

	// Path to the sqlite database (backend "sqlite" only)
	Path string `json:"path,omitempty"`
}

// LatencyConfig holds per-operation artificial delays in milliseconds
// for the in-memory backend. Zero values fall back to the demo
// defaults (500/500/500/1000).
type LatencyConfig struct {
	InsertMS int `json:"insert_ms,omitempty"`
	UpdateMS int `json:"update_ms,omitempty"`
	DeleteMS int `json:"delete_ms,omitempty"`
	GetMS    int `json:"get_ms,omitempty"`
}

// LoggingConfig controls category file logging.
type LoggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Categories map[string]bool `json:"categories,omitempty"`
	Level      string          `json:"level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: "light",
		Store: &StoreConfig{Backend: BackendMemory},
	}
}

// DefaultPath returns the config file location for the given
// workspace. An empty workspace falls back to the user home directory.
func DefaultPath(workspace string) string {
	if workspace == "" {
		if home, err := os.UserHomeDir(); err == nil {
			workspace = home
		} else {
			workspace = "."
		}
	}
	return filepath.Join(workspace, ".reque3sted", "config.json")
}

// Load reads the config from path, applying defaults for anything
// missing and environment overrides on top. A missing file is not an
// error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{Backend: BackendMemory}
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendMemory
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets environment variables win over file values.
// Supported: REQUE3STED_THEME, REQUE3STED_STORE_BACKEND,
// REQUE3STED_DB_PATH, and REQUE3STED_{INSERT,UPDATE,DELETE,GET}_LATENCY_MS.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("REQUE3STED_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("REQUE3STED_STORE_BACKEND"); v != "" {
		if c.Store == nil {
			c.Store = &StoreConfig{}
		}
		c.Store.Backend = v
	}
	if v := os.Getenv("REQUE3STED_DB_PATH"); v != "" {
		if c.Store == nil {
			c.Store = &StoreConfig{}
		}
		c.Store.Path = v
	}
	if ms, ok := envMS("REQUE3STED_INSERT_LATENCY_MS"); ok {
		c.ensureLatency().InsertMS = ms
	}
	if ms, ok := envMS("REQUE3STED_UPDATE_LATENCY_MS"); ok {
		c.ensureLatency().UpdateMS = ms
	}
	if ms, ok := envMS("REQUE3STED_DELETE_LATENCY_MS"); ok {
		c.ensureLatency().DeleteMS = ms
	}
	if ms, ok := envMS("REQUE3STED_GET_LATENCY_MS"); ok {
		c.ensureLatency().GetMS = ms
	}
}

// envMS parses a millisecond count from the environment; malformed
// values are ignored.
func envMS(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return ms, true
}

func (c *Config) ensureLatency() *LatencyConfig {
	if c.Latency == nil {
		c.Latency = &LatencyConfig{}
	}
	return c.Latency
}

// DBPath resolves the sqlite database location, defaulting to
// .reque3sted/users.db under the workspace.
func (c *Config) DBPath(workspace string) string {
	if c.Store != nil && c.Store.Path != "" {
		return c.Store.Path
	}
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, ".reque3sted", "users.db")
}

// latencyOr returns ms as a duration, or def when ms is zero.
func latencyOr(ms int, def time.Duration) time.Duration {
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// InsertLatency returns the configured insert delay.
func (c *Config) InsertLatency() time.Duration {
	if c.Latency == nil {
		return 500 * time.Millisecond
	}
	return latencyOr(c.Latency.InsertMS, 500*time.Millisecond)
}

// UpdateLatency returns the configured update delay.
func (c *Config) UpdateLatency() time.Duration {
	if c.Latency == nil {
		return 500 * time.Millisecond
	}
	return latencyOr(c.Latency.UpdateMS, 500*time.Millisecond)
}

// DeleteLatency returns the configured delete delay.
func (c *Config) DeleteLatency() time.Duration {
	if c.Latency == nil {
		return 500 * time.Millisecond
	}
	return latencyOr(c.Latency.DeleteMS, 500*time.Millisecond)
}

// GetLatency returns the configured lookup delay.
func (c *Config) GetLatency() time.Duration {
	if c.Latency == nil {
		return time.Second
	}
	return latencyOr(c.Latency.GetMS, time.Second)
}
