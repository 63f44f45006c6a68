// Package browser opens URLs in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrUnsupportedPlatform is returned on platforms without a known opener.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Command returns the opener command for goos.
func Command(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Open opens rawURL without waiting for the browser to exit. Only http and
// https URLs are accepted.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", rawURL)
	}

	name, args, err := Command(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}
