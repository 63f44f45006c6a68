package browser

import (
	"errors"
	"runtime"
	"testing"
)

func TestOpenSupported(t *testing.T) {
	// Just verify the current platform has an opener.
	// We can't actually test browser opening in a unit test
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		if _, _, err := Command(runtime.GOOS, "https://example.com"); err != nil {
			t.Errorf("Command() error = %v", err)
		}
	default:
		t.Skipf("Unsupported platform: %s", runtime.GOOS)
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
	}
	for _, tt := range tests {
		name, args, err := Command(tt.goos, "https://leetcode.com/problems/two-sum/")
		if err != nil {
			t.Fatalf("Command(%s) error = %v", tt.goos, err)
		}
		if name != tt.want {
			t.Errorf("Command(%s) = %s, want %s", tt.goos, name, tt.want)
		}
		if args[len(args)-1] != "https://leetcode.com/problems/two-sum/" {
			t.Errorf("Command(%s) args = %v", tt.goos, args)
		}
	}

	if _, _, err := Command("plan9", "https://x"); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("Command(plan9) error = %v", err)
	}
}

func TestOpenRejectsNonHTTP(t *testing.T) {
	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "ftp://x"} {
		if err := Open(u); err == nil {
			t.Errorf("Open(%q) error = nil", u)
		}
	}
}
