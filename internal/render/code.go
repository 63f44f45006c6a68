package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	gutterMark  = "▌"
	gutterBlank = " "
)

// CodeOptions controls Code.
type CodeOptions struct {
	Language   string
	Highlights []int // zero-based line numbers to mark
	Theme      string
	// Marker styles a gutter mark for a highlighted line. Nil leaves it
	// unstyled.
	Marker func(string) string
}

// chromaStyle picks a chroma style to match the terminal theme.
func chromaStyle(theme string) string {
	switch theme {
	case "light":
		return "github"
	case "notty":
		return ""
	default:
		return "monokai"
	}
}

// Highlight returns code with terminal syntax colouring. With the notty
// theme or on error it returns code unchanged.
func Highlight(code, language, theme string) string {
	style := chromaStyle(theme)
	if style == "" || language == "" {
		return code
	}
	var b strings.Builder
	if err := quick.Highlight(&b, code, language, "terminal256", style); err != nil {
		return code
	}
	return b.String()
}

// Code renders code with line numbers and a gutter that marks the
// highlighted lines.
func Code(code string, opts CodeOptions) string {
	code = strings.TrimRight(code, "\n")
	plain := strings.Split(code, "\n")
	coloured := strings.Split(Highlight(code, opts.Language, opts.Theme), "\n")
	if len(coloured) != len(plain) {
		coloured = plain
	}

	marked := make(map[int]bool, len(opts.Highlights))
	for _, l := range opts.Highlights {
		marked[l] = true
	}

	numWidth := len(fmt.Sprint(len(plain)))
	var b strings.Builder
	for i, line := range coloured {
		mark := gutterBlank
		if marked[i] {
			mark = gutterMark
			if opts.Marker != nil {
				mark = opts.Marker(mark)
			}
		}
		fmt.Fprintf(&b, "%s %*d  %s", mark, numWidth, i+1, line)
		if i < len(coloured)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
