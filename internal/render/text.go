package render

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Width returns the terminal cell width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Ago renders t relative to now, e.g. "3 minutes ago".
func Ago(t time.Time) string {
	return humanize.Time(t)
}

// Count renders n with a singular or plural noun, e.g. "1 step", "4 steps".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return humanize.Comma(int64(n)) + " " + singular
	}
	return humanize.Comma(int64(n)) + " " + plural
}
