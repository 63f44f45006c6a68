package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.History.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("history: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	if c.ExplanationInterval < 0 {
		return errors.New("explanation_interval must be non-negative")
	}
	if c.CodeInterval < 0 {
		return errors.New("code_interval must be non-negative")
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light", "notty":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, light, or notty)", c.Theme)
	}
	if c.WordWrap < 0 {
		return errors.New("word_wrap must be non-negative")
	}
	return nil
}

// Validate checks HistoryConfig for errors.
func (c *HistoryConfig) Validate() error {
	if c.Limit < 0 {
		return errors.New("limit must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
