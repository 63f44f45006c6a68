package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/search"
	"github.com/tessro/stepwise/internal/tui/components"
	"github.com/tessro/stepwise/internal/tui/styles"
)

const (
	headerHeight = 3
	statusHeight = 1
	stepsHeight  = 14
)

// layout sizes the viewport for the current tab.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	h := m.height - headerHeight - statusHeight
	if m.tab == TabExplanation || m.tab == TabCode {
		h -= stepsHeight
	}
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func (m Model) wrapWidth() int {
	wrap := m.app.cfg.TUI.WordWrap
	if m.width > 0 && m.width-4 < wrap {
		wrap = m.width - 4
	}
	if wrap < 20 {
		wrap = 20
	}
	return wrap
}

// refreshViewport re-renders the body of the active tab.
func (m *Model) refreshViewport() {
	theme := m.app.cfg.TUI.Theme
	wrap := m.wrapWidth()

	var body string
	switch m.tab {
	case TabExplanation:
		body = render.MarkdownOrPlain(components.TopicMarkdown(m.topic), wrap, theme)
	case TabCode:
		ex, ok := m.topic.Example(m.example)
		if !ok {
			body = styles.Muted.Render("No code examples for this topic")
			break
		}
		body = m.codeView.Render(ex, m.example, len(m.topic.CodeExamples), m.code.Snapshot(), theme)
	case TabPatterns:
		body = render.MarkdownOrPlain(components.PatternsMarkdown(m.topic.Patterns), wrap, theme)
	case TabProblems:
		body = m.problems.Render(m.topic.ProblemSet, theme, wrap)
	}
	m.viewport.SetContent(body)
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	// Show overlays if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showSearch {
		return m.renderSearch()
	}

	var main string
	switch m.view {
	case ViewDetail:
		main = m.renderDetail()
	case ViewNotFound:
		main = m.renderNotFound()
	default:
		main = m.renderHome()
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) renderHome() string {
	header := styles.Highlight.Render("stepwise") + "  " +
		styles.Muted.Render("Data Structures & Algorithms, one step at a time")

	// Two columns: topics on the left, recently viewed on the right
	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 2
	bodyHeight := m.height - headerHeight - statusHeight

	topics := m.topicList.Render(m.topics, leftWidth-2, bodyHeight-2, true)
	recent := m.historyView.Render(m.recent, rightWidth-2, bodyHeight-2, false)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, topics, recent),
	)
}

func (m Model) renderDetail() string {
	t := m.topic
	title := styles.Title.Render(t.Title) + "  " + styles.DifficultyBadge(t.Difficulty)
	if t.EstimatedTime != "" {
		title += styles.Dim.Render("  ⏱ " + t.EstimatedTime)
	}

	parts := []string{
		title,
		styles.Tabs(tabNames, int(m.tab)),
		"",
		m.viewport.View(),
	}

	switch m.tab {
	case TabExplanation:
		parts = append(parts, m.explainSteps.Render(m.explain.Snapshot(), m.width-2, stepsHeight-2, true))
	case TabCode:
		parts = append(parts, m.codeSteps.Render(m.code.Snapshot(), m.width-2, stepsHeight-2, true))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderNotFound() string {
	var b strings.Builder
	b.WriteString(styles.ErrorText.Bold(true).Render("Topic not found"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "There is no topic with id %q.\n", m.missing)
	if len(m.suggestion) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("Did you mean: " + strings.Join(m.suggestion, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("Enter or Esc: back to topics  /: search"))

	content := lipgloss.NewStyle().Padding(1, 2).Render(b.String())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-statusHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(content))
}

func (m Model) renderStatusBar() string {
	var status string
	switch m.view {
	case ViewDetail:
		switch m.tab {
		case TabExplanation:
			status = "space:play/pause  s:stop  n/p:step  1-9:jump  tab:section  esc:back  ?:help"
		case TabCode:
			status = "space:play/pause  s:stop  n/p:step  [/]:example  c:copy  tab:section  esc:back"
		case TabProblems:
			status = "j/k:select  enter:details  c:copy solution  o:open link  tab:section  esc:back"
		default:
			status = "↑/↓:scroll  tab:section  esc:back  ?:help"
		}
	case ViewNotFound:
		status = "enter:back to topics  /:search  q:quit"
	default:
		status = "j/k:select  enter:open  /:search  ?:help  q:quit"
	}
	status = styles.Dim.Render(status)

	if m.status != "" {
		if m.statusErr {
			status = styles.Paused.Render(m.status)
		} else {
			status = styles.Playing.Render(m.status)
		}
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "stepwise - Keyboard Shortcuts"
	divider := strings.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  /, Ctrl+K    Search topics
  Esc          Back

  Topic list
  ──────────
  j/↓, k/↑     Select
  Enter        Open topic

  Topic page
  ──────────
  Tab          Next section
  Shift+Tab    Previous section
  Space        Play / pause / resume
  s            Stop and rewind
  n, p         Next / previous step
  1-9          Jump to step
  [ ]          Previous / next code example
  c            Copy code or solution
  o            Open problem link
  Enter        Show problem details

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

func (m Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	query := m.searchInput.Value()
	results := m.nav.Results()

	switch {
	case strings.TrimSpace(query) == "":
		b.WriteString(styles.Label.Render("Popular topics"))
		b.WriteString("\n")
		for _, t := range m.corpus.Suggestions(core.SuggestionCount) {
			b.WriteString("  " + t.Title + " " + styles.Dim.Render(t.ID) + "\n")
		}
	case len(results) == 0:
		b.WriteString(styles.Muted.Render(fmt.Sprintf("No topics match %q", query)))
		b.WriteString("\n")
	default:
		for i, t := range results {
			line := t.Title + " " + styles.DifficultyBadge(t.Difficulty) + " " +
				styles.Muted.Render(render.Truncate(t.Description, 30))
			if i == m.nav.Index() {
				b.WriteString(styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(results) == search.MaxResults {
			b.WriteString(styles.Dim.Render("  showing the first " + fmt.Sprint(search.MaxResults)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("↑/↓:nav  Enter:open  Esc:close"))

	content := lipgloss.NewStyle().
		Width(64).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.FocusedBorder.Render(content))
}
