package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/search"
)

// SearchModel is the bubbletea model for the live search wizard.
type SearchModel struct {
	input       textinput.Model
	topics      []core.Topic
	suggestions []core.Topic
	opts        []search.Option
	nav         *search.Navigator
	selected    *core.Topic
	width       int
	height      int
}

// Styles
var (
	searchTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	searchResultStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	searchSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	searchSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// NewSearchModel creates a new search wizard model over a corpus.
func NewSearchModel(corpus *core.Corpus, opts ...search.Option) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search topics, tags, difficulty..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return SearchModel{
		input:       ti,
		topics:      corpus.Topics(),
		suggestions: corpus.Suggestions(core.SuggestionCount),
		opts:        opts,
		nav:         search.NewNavigator(nil),
		width:       80,
		height:      20,
	}
}

// Init initializes the model.
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if t, ok := m.nav.Selected(); ok {
				m.selected = &t
				return m, tea.Quit
			}
			return m, nil

		case "up", "ctrl+p":
			m.nav.Up()
			return m, nil

		case "down", "ctrl+n":
			m.nav.Down()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.nav.SetResults(search.Filter(m.input.Value(), m.topics, m.opts...))
	}
	return m, cmd
}

// View renders the model.
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(searchTitleStyle.Render("🔍 Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	query := m.input.Value()
	results := m.nav.Results()

	switch {
	case strings.TrimSpace(query) == "":
		b.WriteString(searchSubtitleStyle.Render("Popular topics"))
		b.WriteString("\n")
		for _, t := range m.suggestions {
			b.WriteString(searchResultStyle.Render("  " + t.Title + " " + searchSubtitleStyle.Render(t.ID)))
			b.WriteString("\n")
		}
	case len(results) == 0:
		b.WriteString(searchSubtitleStyle.Render(fmt.Sprintf("No topics match %q", query)))
		b.WriteString("\n")
	default:
		for i, t := range results {
			line := t.Title + " " + searchSubtitleStyle.Render(string(t.Difficulty)+" · "+strings.Join(t.Tags, ", "))
			if i == m.nav.Index() {
				b.WriteString(searchSelectedStyle.Render("> " + line))
			} else {
				b.WriteString(searchResultStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(searchSubtitleStyle.Render("↑/↓ navigate • enter open • esc cancel"))

	return b.String()
}

// Selected returns the selected topic, or nil if cancelled.
func (m SearchModel) Selected() *core.Topic {
	return m.selected
}

// RunSearch runs the search wizard and returns the selected topic.
func RunSearch(corpus *core.Corpus, opts ...search.Option) (*core.Topic, error) {
	model := NewSearchModel(corpus, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(SearchModel).Selected(), nil
}
