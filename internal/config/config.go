// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for the crop
// advisor TUI.
//
// Supports both TOML and JSON configuration formats, with built-in
// defaults and environment variable overrides.
//
// Configuration file locations (in order of precedence):
//   - ~/.farmai/config.toml
//   - ~/.farmai/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete advisor configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Service configuration
	Service ServiceConfig `toml:"service" json:"service"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Session persistence configuration
	Sessions SessionConfig `toml:"sessions" json:"sessions"`

	// Submission history configuration
	History HistoryConfig `toml:"history" json:"history"`
}

// ServiceConfig contains the recommendation service settings.
type ServiceConfig struct {
	// EndpointURL is the base URL of the recommendation service. The
	// request path is fixed; only the host part is configurable.
	EndpointURL string `toml:"endpoint_url" json:"endpoint_url"`
	// TimeoutSecs is the request timeout in seconds. 0 disables the
	// timeout: a submission stays pending until the service answers.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// ShowTimestamps toggles timestamps on message bubbles
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// CompactMode reduces bubble padding for small terminals
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// SessionConfig contains chat session persistence settings.
type SessionConfig struct {
	// Enabled toggles saving the transcript across runs
	Enabled bool `toml:"enabled" json:"enabled"`
	// Dir is the session storage directory (empty = <data dir>/sessions)
	Dir string `toml:"dir" json:"dir"`
	// MaxSessions limits stored sessions (0 = unlimited)
	MaxSessions int `toml:"max_sessions" json:"max_sessions"`
}

// HistoryConfig contains submission history settings.
type HistoryConfig struct {
	// Enabled toggles the SQLite submission log
	Enabled bool `toml:"enabled" json:"enabled"`
	// DBPath is the database path (empty = <data dir>/history.db)
	DBPath string `toml:"db_path" json:"db_path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Service: ServiceConfig{
			EndpointURL: "http://localhost:5000",
			TimeoutSecs: 0,
		},
		UI: UIConfig{
			ShowTimestamps: true,
			CompactMode:    false,
		},
		Sessions: SessionConfig{
			Enabled:     true,
			MaxSessions: 50,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// DataDir returns the advisor data directory, honoring FARMAI_DATA_DIR.
func DataDir() string {
	if dir := os.Getenv("FARMAI_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".farmai"
	}
	return filepath.Join(home, ".farmai")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default locations, falling back to
// built-in defaults, then applies environment overrides.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the configuration from an explicit path. An empty path
// selects the default locations. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := readInto(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	dir := DataDir()
	for _, name := range []string{"config.toml", "config.json"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// readInto parses a TOML or JSON config file over the given config.
func readInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
		return nil
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FARMAI_ENDPOINT"); v != "" {
		cfg.Service.EndpointURL = v
	}
	if v := os.Getenv("FARMAI_NO_HISTORY"); v == "1" || strings.EqualFold(v, "true") {
		cfg.History.Enabled = false
		cfg.Sessions.Enabled = false
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Service.EndpointURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid service endpoint URL: %q", c.Service.EndpointURL)
	}
	if c.Service.TimeoutSecs < 0 {
		return fmt.Errorf("service timeout must not be negative: %d", c.Service.TimeoutSecs)
	}
	if c.Sessions.MaxSessions < 0 {
		return fmt.Errorf("max sessions must not be negative: %d", c.Sessions.MaxSessions)
	}
	return nil
}

// SessionDir returns the effective session storage directory.
func (c *Config) SessionDir() string {
	if c.Sessions.Dir != "" {
		return c.Sessions.Dir
	}
	return filepath.Join(DataDir(), "sessions")
}

// HistoryDBPath returns the effective submission history database path.
func (c *Config) HistoryDBPath() string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	return filepath.Join(DataDir(), "history.db")
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	cfg := globalCfg
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	loaded, err := Load()
	if err != nil {
		loaded = Default()
	}
	SetGlobal(loaded)
	return loaded
}

// SetGlobal replaces the process-wide configuration. Used by main after
// flag handling and by tests.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	globalCfg = cfg
	globalMu.Unlock()
}
