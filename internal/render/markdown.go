// Package render turns topic content into terminal text: markdown through
// glamour, code through chroma, and width-aware truncation.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders md for a terminal of the given wrap width. theme is one
// of auto, dark, light or notty.
func Markdown(md string, width int, theme string) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	}
	switch theme {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(theme))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// MarkdownOrPlain renders md, falling back to the raw text on error.
func MarkdownOrPlain(md string, width int, theme string) string {
	out, err := Markdown(md, width, theme)
	if err != nil {
		return md
	}
	return out
}
