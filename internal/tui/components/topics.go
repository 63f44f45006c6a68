package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/tui/styles"
)

// TopicList displays the corpus as a scrollable, selectable list
type TopicList struct {
	offset   int
	selected int
}

// NewTopicList creates a new TopicList component
func NewTopicList() *TopicList {
	return &TopicList{}
}

// SelectNext selects the next topic
func (l *TopicList) SelectNext(n int) {
	if l.selected < n-1 {
		l.selected++
	}
}

// SelectPrev selects the previous topic
func (l *TopicList) SelectPrev() {
	if l.selected > 0 {
		l.selected--
	}
}

// Selected returns the selected index
func (l *TopicList) Selected() int {
	return l.selected
}

// Clamp keeps the selection inside a list of n topics.
func (l *TopicList) Clamp(n int) {
	if l.selected >= n {
		l.selected = n - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Render renders the topic list panel
func (l *TopicList) Render(topics []core.Topic, width, height int, focused bool) string {
	title := styles.PanelTitle("Topics", focused)

	var content string
	if len(topics) == 0 {
		content = styles.Muted.Render("No topics loaded")
	} else {
		content = l.renderTopics(topics, width-4, height-4, focused)
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

func (l *TopicList) renderTopics(topics []core.Topic, width, maxLines int, focused bool) string {
	l.Clamp(len(topics))

	// Two lines per topic plus the "more" indicator
	visible := (maxLines - 1) / 2
	if visible < 1 {
		visible = 1
	}

	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+visible {
		l.offset = l.selected - visible + 1
	}

	start := l.offset
	end := start + visible
	if end > len(topics) {
		end = len(topics)
	}

	lines := make([]string, 0, 2*(end-start)+1)

	// Fixed overhead: "XX. " (4) + "▸ " (2)
	const overhead = 6

	for i := start; i < end; i++ {
		t := topics[i]

		num := fmt.Sprintf("%2d.", i+1)
		badge := styles.DifficultyBadge(t.Difficulty)
		name := render.Truncate(t.Title, width-overhead-render.Width(string(t.Difficulty))-1)

		selector := "  "
		if i == l.selected {
			selector = "▸ "
			if focused {
				name = styles.Highlight.Render(name)
			}
		}

		lines = append(lines,
			fmt.Sprintf("%s%s %s %s", selector, styles.Dim.Render(num), name, badge),
			"      "+styles.Muted.Render(render.Truncate(t.Description, width-overhead)),
		)
	}

	if end < len(topics) {
		more := styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(topics)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
