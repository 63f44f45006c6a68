package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/stepwise/internal/core"
)

// TopicModel is the bubbletea model for the topic picker.
type TopicModel struct {
	topics   []core.Topic
	cursor   int
	selected *core.Topic
	width    int
	height   int
}

// Styles for topic picker
var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	pickerMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// NewTopicModel creates a new topic picker model.
func NewTopicModel(topics []core.Topic) TopicModel {
	return TopicModel{
		topics: topics,
		width:  80,
		height: 20,
	}
}

// Init initializes the model.
func (m TopicModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TopicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit

		case "enter", " ":
			if len(m.topics) > 0 && m.cursor < len(m.topics) {
				m.selected = &m.topics[m.cursor]
				return m, tea.Quit
			}

		case "up", "k", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j", "ctrl+n":
			if m.cursor < len(m.topics)-1 {
				m.cursor++
			}

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			if len(m.topics) > 0 {
				m.cursor = len(m.topics) - 1
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the model.
func (m TopicModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("📚 Select Topic"))
	b.WriteString("\n\n")

	if len(m.topics) == 0 {
		b.WriteString(pickerMetaStyle.Render("No topics loaded"))
		b.WriteString("\n")
	} else {
		for i, t := range m.topics {
			line := t.Title + " " + pickerMetaStyle.Render("("+string(t.Difficulty)+", "+t.ID+")")
			if i == m.cursor {
				b.WriteString(pickerSelectedStyle.Render("▸ " + line))
			} else {
				b.WriteString(pickerItemStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(pickerMetaStyle.Render("↑/↓ navigate • enter select • esc quit"))

	return b.String()
}

// Selected returns the selected topic, or nil if none.
func (m TopicModel) Selected() *core.Topic {
	return m.selected
}

// RunTopicPicker runs the topic picker and returns the selected topic.
func RunTopicPicker(topics []core.Topic) (*core.Topic, error) {
	model := NewTopicModel(topics)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(TopicModel).Selected(), nil
}
