package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Key types accepted by Set.
const (
	kindString = iota
	kindInt
	kindBool
)

// Keys lists the settable keys and their value kinds.
var Keys = map[string]int{
	"content.path":                kindString,
	"content.watch":               kindBool,
	"player.explanation_interval": kindInt,
	"player.code_interval":        kindInt,
	"search.match_concept_count":  kindBool,
	"tui.theme":                   kindString,
	"tui.word_wrap":               kindInt,
	"history.enabled":             kindBool,
	"history.path":                kindString,
	"history.limit":               kindInt,
	"log.level":                   kindString,
	"log.file":                    kindString,
}

func writeHeader(w io.Writer) {
	_, _ = fmt.Fprintln(w, "# Stepwise Configuration")
	_, _ = fmt.Fprintln(w, "# https://github.com/tessro/stepwise")
	_, _ = fmt.Fprintln(w, "")
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, v any) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = "  "
	return encoder.Encode(v)
}

// Save writes cfg to path with a header comment, creating parent
// directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	writeHeader(f)
	if err := Encode(f, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Set updates one "section.key" in the TOML file at path, keeping any
// other keys the file already holds.
func Set(path, key, value string) error {
	kind, ok := Keys[key]
	if !ok {
		return fmt.Errorf("unknown key %q", key)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if raw == nil {
		raw = make(map[string]any)
	}

	section, field, _ := strings.Cut(key, ".")
	sectionMap, ok := raw[section].(map[string]any)
	if !ok {
		sectionMap = make(map[string]any)
		raw[section] = sectionMap
	}

	switch kind {
	case kindInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value must be an integer for %s", key)
		}
		sectionMap[field] = i
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value must be true or false for %s", key)
		}
		sectionMap[field] = b
	default:
		sectionMap[field] = value
	}

	// Reject values that would make the file unloadable.
	var check Config
	var buf strings.Builder
	if err := Encode(&buf, raw); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if _, err := toml.Decode(buf.String(), &check); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	check.ApplyDefaults()
	if err := check.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer func() { _ = f.Close() }()

	writeHeader(f)
	if _, err := io.WriteString(f, buf.String()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
