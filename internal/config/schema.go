package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Content ContentConfig `toml:"content" json:"content"`
	Player  PlayerConfig  `toml:"player" json:"player"`
	Search  SearchConfig  `toml:"search" json:"search"`
	TUI     TUIConfig     `toml:"tui" json:"tui"`
	History HistoryConfig `toml:"history" json:"history"`
	Log     LogConfig     `toml:"log" json:"log"`
}

// ContentConfig controls where topics are loaded from.
type ContentConfig struct {
	Path  string `toml:"path" json:"path"`
	Watch bool   `toml:"watch" json:"watch"`
}

// PlayerConfig holds auto-play intervals in milliseconds.
type PlayerConfig struct {
	ExplanationInterval int `toml:"explanation_interval" json:"explanation_interval"`
	CodeInterval        int `toml:"code_interval" json:"code_interval"`
}

// ExplanationDelay returns the explanation auto-play interval.
func (c PlayerConfig) ExplanationDelay() time.Duration {
	return time.Duration(c.ExplanationInterval) * time.Millisecond
}

// CodeDelay returns the code walkthrough auto-play interval.
func (c PlayerConfig) CodeDelay() time.Duration {
	return time.Duration(c.CodeInterval) * time.Millisecond
}

// SearchConfig holds search filter settings.
type SearchConfig struct {
	MatchConceptCount bool `toml:"match_concept_count" json:"match_concept_count"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme    string `toml:"theme" json:"theme"`
	WordWrap int    `toml:"word_wrap" json:"word_wrap"`
}

// HistoryConfig controls the recently-viewed store.
type HistoryConfig struct {
	Enabled *bool  `toml:"enabled" json:"enabled"`
	Path    string `toml:"path" json:"path"`
	Limit   int    `toml:"limit" json:"limit"`
}

// IsEnabled reports whether history recording is on. Unset means on.
func (c HistoryConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" json:"level"`
	File  string `toml:"file" json:"file"`
}
