package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/player"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/tui/styles"
)

// maxDots caps the step dots row; longer sequences show a counter only.
const maxDots = 30

// Steps displays a player's current step with its progress and controls
type Steps struct {
	title string
}

// NewSteps creates a new Steps component
func NewSteps(title string) *Steps {
	return &Steps{title: title}
}

// Render renders the step panel
func (s *Steps) Render(snap player.Snapshot, width, height int, focused bool) string {
	title := styles.PanelTitle(s.title, focused)

	var content string
	if !snap.HasStep() {
		content = styles.Muted.Render("No steps for this section")
	} else {
		content = s.renderStep(snap, width-4)
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

func (s *Steps) renderStep(snap player.Snapshot, width int) string {
	step := snap.Step

	icon := styles.StatusIcon(snap.State)
	heading := styles.Title.Render(render.Truncate(step.Title, width-4))

	desc := lipgloss.NewStyle().Width(width - 2).Render(step.Description)

	lines := []string{
		icon + " " + heading,
		"",
		desc,
	}
	if step.HasTip() {
		tip := lipgloss.NewStyle().Width(width - 2).Render("💡 " + step.Tip)
		lines = append(lines, "", styles.Tip.Render(tip))
	}

	counter := fmt.Sprintf("%d/%d", snap.Index+1, snap.Len)
	barWidth := width - len(counter) - 2
	if barWidth < 10 {
		barWidth = 10
	}
	lines = append(lines,
		"",
		styles.ProgressBar(snap.Progress(), barWidth)+" "+styles.Dim.Render(counter),
		Dots(snap),
		s.renderControls(snap),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *Steps) renderControls(snap player.Snapshot) string {
	var controls string

	prev := styles.Dim
	if snap.IsFirst() {
		prev = styles.Label.Faint(true)
	}
	controls += prev.Render("⏮ ")

	switch snap.State {
	case player.StatePlaying:
		controls += styles.Playing.Render("⏸")
	default:
		controls += styles.Paused.Render("▶")
	}

	next := styles.Dim
	if snap.IsLast() {
		next = styles.Label.Faint(true)
	}
	controls += next.Render(" ⏭")

	return controls + "  " + styles.Dim.Render(snap.State.String())
}

// Dots renders one dot per step, filled for visited steps.
func Dots(snap player.Snapshot) string {
	if snap.Len == 0 || snap.Len > maxDots {
		return ""
	}
	var b strings.Builder
	for i := 0; i < snap.Len; i++ {
		switch {
		case i == snap.Index:
			b.WriteString(styles.Highlight.Render("●"))
		case snap.Visited(i):
			b.WriteString(styles.Playing.Render("●"))
		default:
			b.WriteString(styles.Dim.Render("○"))
		}
		if i < snap.Len-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
