package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	l, err := New("debug", "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// Must not panic or write anywhere.
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stepwise.log")

	l, err := New("warn", path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("below level")
	l.With("topic", "arrays").Warn("reload failed", "files", 2)
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "below level") {
		t.Error("info line written at warn level")
	}
	for _, want := range []string{`"msg":"reload failed"`, `"topic":"arrays"`, `"files":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("log = %q, missing %s", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"", "debug", "INFO", "warn", "error"} {
		if _, err := parseLevel(lvl); err != nil {
			t.Errorf("parseLevel(%q) error = %v", lvl, err)
		}
	}
	if _, err := New("loud", filepath.Join(t.TempDir(), "x.log")); err == nil {
		t.Error("New(loud) error = nil")
	}
}
