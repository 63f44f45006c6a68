package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tessro/stepwise/internal/browser"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/player"
	"github.com/tessro/stepwise/internal/search"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.view == ViewDetail {
			m.refreshViewport()
		}
		return m, nil

	case stepMsg:
		if m.view == ViewDetail && m.tab == TabCode {
			m.refreshViewport()
		}
		return m, m.app.listen()

	case reloadMsg:
		m.applyReload(msg)
		flash := m.flashCmd()
		return m, tea.Batch(m.app.listen(), flash)

	case historyMsg:
		if msg.err != nil {
			m.app.log.Warn("history", "error", msg.err)
			return m, nil
		}
		m.recent = msg.entries
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.err
		flash := m.flashCmd()
		return m, flash

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Forward other messages to textinput when search is active
	if m.showSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if m.view == ViewDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (always work)
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+k":
		if m.showSearch {
			m.closeSearch()
			return m, nil
		}
		return m.openSearch()
	}

	// Help overlay
	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	// Search overlay
	if m.showSearch {
		return m.handleSearchKeyPress(msg)
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return m.quit()
	case "?":
		m.showHelp = true
		return m, nil
	case "/":
		return m.openSearch()
	}

	switch m.view {
	case ViewDetail:
		return m.handleDetailKeyPress(msg)
	case ViewNotFound:
		switch msg.String() {
		case "esc", "enter", "h":
			m.goHome()
		}
		return m, nil
	default:
		return m.handleHomeKeyPress(msg)
	}
}

func (m Model) handleHomeKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.topicList.SelectNext(len(m.topics))
	case "k", "up":
		m.topicList.SelectPrev()
	case "enter":
		if t, ok := m.corpus.At(m.topicList.Selected()); ok {
			m.openTopic(t.ID)
			return m, m.recordView()
		}
	}
	return m, nil
}

func (m Model) handleDetailKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		m.goHome()
		return m, nil
	case "tab":
		m.setTab((m.tab + 1) % Tab(len(tabNames)))
		return m, nil
	case "shift+tab":
		m.setTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
		return m, nil
	}

	if p := m.activePlayer(); p != nil {
		switch key {
		case " ":
			p.Toggle()
			return m.afterStep()
		case "s":
			p.Stop()
			return m.afterStep()
		case "n", "right", "l":
			p.Next()
			return m.afterStep()
		case "p", "left", "h":
			p.Previous()
			return m.afterStep()
		}
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if err := p.Select(int(key[0] - '1')); err != nil {
				flash := m.setStatus(fmt.Sprintf("No step %s", key), true)
				return m, flash
			}
			return m.afterStep()
		}
	}

	switch m.tab {
	case TabCode:
		switch key {
		case "]":
			m.switchExample(m.example + 1)
			return m, nil
		case "[":
			m.switchExample(m.example - 1)
			return m, nil
		case "c":
			if ex, ok := m.topic.Example(m.example); ok {
				return m, copyCmd(ex.Code, "code")
			}
			return m, nil
		}

	case TabProblems:
		switch key {
		case "j", "down":
			m.problems.SelectNext(len(m.topic.ProblemSet))
			m.refreshViewport()
			return m, nil
		case "k", "up":
			m.problems.SelectPrev()
			m.refreshViewport()
			return m, nil
		case "enter":
			m.problems.ToggleExpanded()
			m.refreshViewport()
			return m, nil
		case "c":
			prob, ok := m.topic.Problem(m.problems.Selected())
			if !ok || prob.Solution == "" {
				flash := m.setStatus("No solution to copy", true)
				return m, flash
			}
			return m, copyCmd(prob.Solution, "solution")
		case "o":
			prob, ok := m.topic.Problem(m.problems.Selected())
			if !ok || len(prob.Links) == 0 {
				flash := m.setStatus("No link for this problem", true)
				return m, flash
			}
			return m, openCmd(prob.Links[0])
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) afterStep() (tea.Model, tea.Cmd) {
	if m.tab == TabCode {
		m.refreshViewport()
	}
	return m, nil
}

func (m Model) handleSearchKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeSearch()
		return m, nil

	case "enter":
		t, ok := m.nav.Selected()
		if !ok {
			return m, nil
		}
		m.closeSearch()
		m.openTopic(t.ID)
		return m, m.recordView()

	case "up", "ctrl+p":
		m.nav.Up()
		return m, nil

	case "down", "ctrl+n":
		m.nav.Down()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.runSearch()
	}
	return m, cmd
}

func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.showSearch = true
	m.showHelp = false
	m.searchInput.SetValue("")
	m.nav.SetResults(nil)
	focus := m.searchInput.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

func (m *Model) closeSearch() {
	m.showSearch = false
	m.searchInput.Blur()
}

func (m *Model) runSearch() {
	m.nav.SetResults(search.Filter(m.searchInput.Value(), m.topics, m.app.searchOptions()...))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.closePlayers()
	m.quitting = true
	return m, tea.Quit
}

// openTopic resolves id and shows its page, or the not-found page.
func (m *Model) openTopic(id string) {
	m.closePlayers()

	t, ok := m.corpus.Resolve(id)
	if !ok {
		m.view = ViewNotFound
		m.missing = id
		m.suggestion = search.Suggest(id, m.topics)
		m.app.log.Debug("topic not found", "id", id)
		return
	}

	m.view = ViewDetail
	m.topic = t
	m.missing = ""
	m.problems.Reset()
	m.explain = m.newPlayer(t.ExplanationSteps, m.app.cfg.Player.ExplanationDelay())
	m.example = 0
	m.code = m.newCodePlayer()
	m.app.log.Debug("open topic", "id", id)

	m.tab = TabExplanation
	m.layout()
	m.refreshViewport()
	m.viewport.GotoTop()
}

func (m *Model) goHome() {
	m.closePlayers()
	m.view = ViewHome
	m.missing = ""
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.layout()
	m.refreshViewport()
	m.viewport.GotoTop()
}

// switchExample moves to code example i, clamped, with a fresh player.
func (m *Model) switchExample(i int) {
	n := len(m.topic.CodeExamples)
	if n == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	if i == m.example {
		return
	}
	if m.code != nil {
		m.code.Close()
	}
	m.example = i
	m.code = m.newCodePlayer()
	m.refreshViewport()
	m.viewport.GotoTop()
}

func (m *Model) newPlayer(steps core.StepSequence, interval time.Duration, opts ...player.Option) *player.Player {
	app := m.app
	opts = append(opts,
		player.WithClock(app.clock),
		player.WithOnChange(func(player.Snapshot) { app.notify(stepMsg{}) }),
	)
	return player.New(steps, interval, opts...)
}

func (m *Model) newCodePlayer() *player.Player {
	ex, ok := m.topic.Example(m.example)
	if !ok {
		return m.newPlayer(nil, m.app.cfg.Player.CodeDelay())
	}
	table := ex.Highlights
	if len(table) == 0 {
		table = player.DefaultHighlights()
	}
	return m.newPlayer(ex.Steps, m.app.cfg.Player.CodeDelay(), player.WithHighlights(table))
}

func (m *Model) closePlayers() {
	if m.explain != nil {
		m.explain.Close()
		m.explain = nil
	}
	if m.code != nil {
		m.code.Close()
		m.code = nil
	}
}

// activePlayer returns the player driven by the step keys on this tab.
func (m Model) activePlayer() *player.Player {
	switch m.tab {
	case TabExplanation:
		return m.explain
	case TabCode:
		return m.code
	default:
		return nil
	}
}

// applyReload swaps in a reloaded corpus. An open topic is re-resolved and
// its players reset; a topic that disappeared shows the not-found page.
func (m *Model) applyReload(msg reloadMsg) {
	if msg.err != nil {
		m.status = "Content reload: " + firstLine(msg.err.Error())
		m.statusErr = true
	}
	if msg.corpus == nil {
		return
	}

	m.corpus = msg.corpus
	m.topics = msg.corpus.Topics()
	m.topicList.Clamp(len(m.topics))
	if m.showSearch {
		m.runSearch()
	}
	if msg.err == nil {
		m.status = fmt.Sprintf("Reloaded %d topics", len(m.topics))
		m.statusErr = false
	}
	m.app.log.Info("content reloaded", "topics", len(m.topics))

	if m.view != ViewDetail {
		return
	}
	t, ok := m.corpus.Resolve(m.topic.ID)
	if !ok {
		m.openTopic(m.topic.ID)
		return
	}
	m.topic = t
	m.explain.SetSteps(t.ExplanationSteps)
	if m.example >= len(t.CodeExamples) {
		m.example = 0
	}
	m.code.Close()
	m.code = m.newCodePlayer()
	m.problems.Reset()
	m.refreshViewport()
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	return m.flashCmd()
}

// flashCmd clears the current status after statusDuration unless a newer
// status replaces it first.
func (m *Model) flashCmd() tea.Cmd {
	if m.status == "" {
		return nil
	}
	m.statusID++
	id := m.statusID
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func copyCmd(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{text: "Copy failed: " + err.Error(), err: true}
		}
		return statusMsg{text: "Copied " + what + " to clipboard"}
	}
}

func openCmd(link core.Link) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(link.URL); err != nil {
			return statusMsg{text: "Open failed: " + err.Error(), err: true}
		}
		return statusMsg{text: "Opened " + link.Platform}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
