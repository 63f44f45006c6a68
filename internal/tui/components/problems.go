package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/tui/styles"
)

// Problems displays a topic's problem set. The selected problem can be
// expanded to show its hints, complexity and solution.
type Problems struct {
	selected int
	expanded bool
}

// NewProblems creates a new Problems component
func NewProblems() *Problems {
	return &Problems{}
}

// SelectNext selects the next problem
func (p *Problems) SelectNext(n int) {
	if p.selected < n-1 {
		p.selected++
		p.expanded = false
	}
}

// SelectPrev selects the previous problem
func (p *Problems) SelectPrev() {
	if p.selected > 0 {
		p.selected--
		p.expanded = false
	}
}

// Selected returns the selected problem index
func (p *Problems) Selected() int {
	return p.selected
}

// ToggleExpanded shows or hides the selected problem's details
func (p *Problems) ToggleExpanded() {
	p.expanded = !p.expanded
}

// Expanded reports whether the selected problem's details are shown
func (p *Problems) Expanded() bool {
	return p.expanded
}

// Reset selects the first problem, collapsed
func (p *Problems) Reset() {
	p.selected = 0
	p.expanded = false
}

// Render renders the problem set
func (p *Problems) Render(problems []core.Problem, theme string, width int) string {
	if len(problems) == 0 {
		return styles.Muted.Render("No practice problems for this topic")
	}
	if p.selected >= len(problems) {
		p.selected = len(problems) - 1
	}

	lines := make([]string, 0, len(problems))
	for i, prob := range problems {
		selector := "  "
		name := prob.Title
		if i == p.selected {
			selector = "▸ "
			name = styles.Highlight.Render(name)
		}

		line := fmt.Sprintf("%s%s  %s", selector, name, styles.DifficultyBadge(prob.Difficulty))
		if prob.Rating > 0 {
			line += styles.Dim.Render(fmt.Sprintf("  ★ %.1f", prob.Rating))
		}
		if len(prob.Links) > 0 {
			line += styles.Dim.Render("  " + platforms(prob.Links))
		}
		lines = append(lines, line)

		if i == p.selected && p.expanded {
			lines = append(lines, "", ProblemDetail(prob, theme, width-4), "")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ProblemDetail renders one problem's description, hints, complexity and
// solution.
func ProblemDetail(prob core.Problem, theme string, width int) string {
	var b strings.Builder
	if prob.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", prob.Description)
	}
	if len(prob.Concepts) > 0 {
		fmt.Fprintf(&b, "**Concepts:** %s\n\n", strings.Join(prob.Concepts, ", "))
	}
	if len(prob.Hints) > 0 {
		b.WriteString("### Hints\n\n")
		for i, h := range prob.Hints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, h)
		}
		b.WriteString("\n")
	}
	if prob.TimeComplexity != "" || prob.SpaceComplexity != "" {
		fmt.Fprintf(&b, "**Time:** %s  **Space:** %s\n\n",
			orDash(prob.TimeComplexity), orDash(prob.SpaceComplexity))
	}
	if prob.Explanation != "" {
		fmt.Fprintf(&b, "%s\n\n", prob.Explanation)
	}
	for _, l := range prob.Links {
		fmt.Fprintf(&b, "- %s: %s\n", l.Platform, l.URL)
	}

	out := render.MarkdownOrPlain(b.String(), width, theme)
	if prob.Solution != "" {
		out += "\n" + styles.Label.Render("Solution (c to copy)") + "\n" +
			render.Code(prob.Solution, render.CodeOptions{Language: guessLanguage(prob.Solution), Theme: theme})
	}
	return out
}

func platforms(links []core.Link) string {
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = l.Platform
	}
	return strings.Join(names, " · ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// guessLanguage picks a lexer for solution snippets, which carry no
// language tag.
func guessLanguage(code string) string {
	switch {
	case strings.Contains(code, "func "):
		return "go"
	case strings.Contains(code, "def "):
		return "python"
	default:
		return "javascript"
	}
}
