package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/player"
)

// Colors - a pleasant color palette
var (
	// Primary colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Accent    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Info    = lipgloss.Color("#3B82F6") // Blue

	// Neutral colors
	Background = lipgloss.Color("#1F2937") // Dark gray
	Surface    = lipgloss.Color("#374151") // Medium gray
	Border     = lipgloss.Color("#4B5563") // Light gray
	Text       = lipgloss.Color("#F9FAFB") // White
	TextMuted  = lipgloss.Color("#9CA3AF") // Gray
	TextDim    = lipgloss.Color("#6B7280") // Darker gray
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Playing = lipgloss.NewStyle().
		Foreground(Success)

	Paused = lipgloss.NewStyle().
		Foreground(Warning)

	Tip = lipgloss.NewStyle().
		Italic(true).
		Foreground(Info)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)

	Selected = lipgloss.NewStyle().
			Background(Surface)
)

// Border styles
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)
)

// Tab styles
var (
	ActiveTab = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Background(Primary).
			Foreground(Text)

	InactiveTab = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(TextMuted)
)

// Panel creates a styled panel with optional focus
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func PanelTitle(title string, focused bool) string {
	style := Label
	if focused {
		style = Highlight
	}
	return style.Render(" " + title + " ")
}

// ProgressBar creates a progress bar string. fraction is in [0, 1].
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStyle := lipgloss.NewStyle().Foreground(Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(Border)

	return filledStyle.Render(strings.Repeat("━", filled)) +
		emptyStyle.Render(strings.Repeat("─", width-filled))
}

// StatusIcon returns an icon for a player state
func StatusIcon(state player.State) string {
	switch state {
	case player.StatePlaying:
		return Playing.Render("▶")
	case player.StatePaused:
		return Paused.Render("⏸")
	default:
		return Dim.Render("■")
	}
}

// DifficultyBadge renders a difficulty label in its colour
func DifficultyBadge(d core.Difficulty) string {
	if d == "" {
		return ""
	}
	var c lipgloss.Color
	switch d {
	case core.DifficultyBeginner, core.DifficultyEasy:
		c = Success
	case core.DifficultyIntermediate, core.DifficultyMedium:
		c = Warning
	default:
		c = Error
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(d))
}

// Tabs renders a tab strip with the active tab highlighted
func Tabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if i == active {
			parts[i] = ActiveTab.Render(name)
		} else {
			parts[i] = InactiveTab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Marker styles a highlighted-line gutter mark
func Marker(s string) string {
	return lipgloss.NewStyle().Foreground(Accent).Render(s)
}
