package config

import (
	"os"
	"path/filepath"
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	enabled := true
	return &Config{
		Player: PlayerConfig{
			ExplanationInterval: 4000,
			CodeInterval:        3000,
		},
		TUI: TUIConfig{
			Theme:    "auto",
			WordWrap: 80,
		},
		History: HistoryConfig{
			Enabled: &enabled,
			Path:    DefaultHistoryPath(),
			Limit:   20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Player
	if c.Player.ExplanationInterval == 0 {
		c.Player.ExplanationInterval = d.Player.ExplanationInterval
	}
	if c.Player.CodeInterval == 0 {
		c.Player.CodeInterval = d.Player.CodeInterval
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.WordWrap == 0 {
		c.TUI.WordWrap = d.TUI.WordWrap
	}

	// History
	if c.History.Enabled == nil {
		c.History.Enabled = d.History.Enabled
	}
	if c.History.Path == "" {
		c.History.Path = d.History.Path
	}
	if c.History.Limit == 0 {
		c.History.Limit = d.History.Limit
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// DefaultPath returns the file `config init` writes to.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stepwiserc"
	}
	return filepath.Join(home, ".stepwiserc")
}

// DefaultHistoryPath returns the bbolt file under the XDG data directory.
func DefaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "stepwise-history.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "stepwise", "history.db")
}
