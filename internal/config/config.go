package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.stepwiserc, $XDG_CONFIG_HOME/stepwise/config.toml, ~/.config/stepwise/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := FindConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing config file path, or "".
func FindConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".stepwiserc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "stepwise", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Content
	if v := os.Getenv("STEPWISE_CONTENT_PATH"); v != "" {
		cfg.Content.Path = v
	}
	if v := os.Getenv("STEPWISE_CONTENT_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Content.Watch = b
		}
	}

	// Player
	if v := os.Getenv("STEPWISE_PLAYER_EXPLANATION_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.ExplanationInterval = i
		}
	}
	if v := os.Getenv("STEPWISE_PLAYER_CODE_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.CodeInterval = i
		}
	}

	// Search
	if v := os.Getenv("STEPWISE_SEARCH_MATCH_CONCEPT_COUNT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Search.MatchConceptCount = b
		}
	}

	// TUI
	if v := os.Getenv("STEPWISE_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// History
	if v := os.Getenv("STEPWISE_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}

	// Log
	if v := os.Getenv("STEPWISE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STEPWISE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
