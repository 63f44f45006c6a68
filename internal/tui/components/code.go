package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/player"
	"github.com/tessro/stepwise/internal/render"
	"github.com/tessro/stepwise/internal/tui/styles"
)

// Code displays a code example with the walkthrough's highlighted lines
type Code struct{}

// NewCode creates a new Code component
func NewCode() *Code {
	return &Code{}
}

// Render renders example i of total, marking the lines the player
// currently highlights.
func (c *Code) Render(ex core.CodeExample, i, total int, snap player.Snapshot, theme string) string {
	header := styles.Title.Render(ex.Title)
	if total > 1 {
		header += styles.Dim.Render(fmt.Sprintf("  (%d/%d, [ ] to switch)", i+1, total))
	}
	if ex.Language != "" {
		header += "  " + styles.Label.Render(ex.Language)
	}

	code := render.Code(ex.Code, render.CodeOptions{
		Language:   ex.Language,
		Highlights: snap.Highlights,
		Theme:      theme,
		Marker:     styles.Marker,
	})

	parts := []string{header, "", code}
	if ex.Visualization != "" {
		parts = append(parts, "", styles.Muted.Render(ex.Visualization))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
