package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/history"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/tui/styles"
)

// History displays recently viewed topics
type History struct{}

// NewHistory creates a new History component
func NewHistory() *History {
	return &History{}
}

// Render renders the history panel
func (h *History) Render(entries []history.Entry, width, height int, focused bool) string {
	title := styles.PanelTitle("Recently viewed", focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("No history yet")
	} else {
		content = h.renderHistory(entries, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (h *History) renderHistory(entries []history.Entry, width, maxLines int) string {
	lines := make([]string, 0, maxLines)

	for i, entry := range entries {
		if i >= maxLines {
			break
		}

		timeAgo := render.Ago(entry.ViewedAt)
		timeWidth := render.Width(timeAgo)

		// icon (2) + gap before the time (1)
		available := width - 3 - timeWidth
		name := render.Truncate(entry.Title, available)

		padding := available - render.Width(name) + 1
		if padding < 1 {
			padding = 1
		}

		line := fmt.Sprintf("%s %s%s%s",
			styles.Dim.Render("✓"),
			name,
			lipgloss.NewStyle().Width(padding).Render(""),
			styles.Dim.Render(timeAgo))

		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
