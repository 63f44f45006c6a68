package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tessro/stepwise/internal/config"
	"github.com/tessro/stepwise/internal/content"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/history"
	"github.com/tessro/stepwise/internal/logger"
	"github.com/tessro/stepwise/internal/player"
	"github.com/tessro/stepwise/internal/search"
	"github.com/tessro/stepwise/internal/tui/components"
)

// View is the page currently on screen
type View int

const (
	ViewHome View = iota
	ViewDetail
	ViewNotFound
)

// Tab is a section of the topic detail page
type Tab int

const (
	TabExplanation Tab = iota
	TabCode
	TabPatterns
	TabProblems
)

var tabNames = []string{"Explanation", "Code", "Patterns", "Problems"}

const (
	statusDuration = 3 * time.Second
	eventBuffer    = 16
)

// Options configures the dashboard
type Options struct {
	Corpus  *core.Corpus
	Config  *config.Config
	History *history.Store // nil disables the recently-viewed panel
	Logger  *logger.Logger
	Clock   player.Clock

	// StartTopic opens a topic page directly. An unknown id shows the
	// not-found page.
	StartTopic string
}

// App holds the state shared by every copy of the Model: configuration,
// stores, and the channel that carries asynchronous events into the
// update loop.
type App struct {
	cfg     *config.Config
	history *history.Store
	log     *logger.Logger
	clock   player.Clock

	events chan tea.Msg
	done   chan struct{}
}

// NewApp creates a new TUI application
func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = player.SystemClock()
	}
	return &App{
		cfg:     cfg,
		history: opts.History,
		log:     log,
		clock:   clock,
		events:  make(chan tea.Msg, eventBuffer),
		done:    make(chan struct{}),
	}
}

// notify queues msg without blocking. Player notifications only prompt a
// redraw from the live snapshot, so a full buffer can drop them.
func (a *App) notify(msg tea.Msg) {
	select {
	case a.events <- msg:
	default:
	}
}

// deliver queues msg, waiting for room until the app closes.
func (a *App) deliver(msg tea.Msg) {
	select {
	case a.events <- msg:
	case <-a.done:
	}
}

// listen waits for the next asynchronous event.
func (a *App) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-a.events:
			return msg
		case <-a.done:
			return nil
		}
	}
}

// Close stops event delivery.
func (a *App) Close() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

func (a *App) searchOptions() []search.Option {
	if a.cfg.Search.MatchConceptCount {
		return []search.Option{search.WithConceptCount()}
	}
	return nil
}

// Model is the main TUI model
type Model struct {
	app    *App
	width  int
	height int
	view   View

	corpus *core.Corpus
	topics []core.Topic
	recent []history.Entry

	// Topic detail
	topic      core.Topic
	tab        Tab
	example    int
	explain    *player.Player
	code       *player.Player
	viewport   viewport.Model
	missing    string
	suggestion []string

	// Components
	topicList    *components.TopicList
	historyView  *components.History
	explainSteps *components.Steps
	codeSteps    *components.Steps
	codeView     *components.Code
	problems     *components.Problems

	// Overlays
	showHelp    bool
	showSearch  bool
	searchInput textinput.Model
	nav         *search.Navigator

	// Status flash
	status    string
	statusErr bool
	statusID  int

	start    string
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App, corpus *core.Corpus, startTopic string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search topics, tags, difficulty..."
	ti.CharLimit = 100
	ti.Width = 50

	if corpus == nil {
		corpus = core.NewCorpus(nil)
	}

	m := Model{
		app:          app,
		corpus:       corpus,
		topics:       corpus.Topics(),
		viewport:     viewport.New(0, 0),
		topicList:    components.NewTopicList(),
		historyView:  components.NewHistory(),
		explainSteps: components.NewSteps("Walkthrough"),
		codeSteps:    components.NewSteps("Code walkthrough"),
		codeView:     components.NewCode(),
		problems:     components.NewProblems(),
		searchInput:  ti,
		nav:          search.NewNavigator(nil),
		start:        startTopic,
	}
	if startTopic != "" {
		m.openTopic(startTopic)
	}
	return m
}

// Messages
type stepMsg struct{}

type reloadMsg struct {
	corpus *core.Corpus
	err    error
}

type historyMsg struct {
	entries []history.Entry
	err     error
}

type statusMsg struct {
	text string
	err  bool
}

type clearStatusMsg struct{ id int }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.app.listen(),
		m.loadHistory(),
		m.recordView(),
	)
}

func (m Model) loadHistory() tea.Cmd {
	store := m.app.history
	if store == nil {
		return nil
	}
	limit := m.app.cfg.History.Limit
	return func() tea.Msg {
		entries, err := store.Recent(limit)
		return historyMsg{entries: entries, err: err}
	}
}

// recordView stores the open topic in history and reloads the panel.
func (m Model) recordView() tea.Cmd {
	store := m.app.history
	if store == nil || m.view != ViewDetail {
		return nil
	}
	id, title := m.topic.ID, m.topic.Title
	limit := m.app.cfg.History.Limit
	return func() tea.Msg {
		if err := store.Record(id, title); err != nil {
			return historyMsg{err: err}
		}
		entries, err := store.Recent(limit)
		return historyMsg{entries: entries, err: err}
	}
}

// Run starts the TUI application
func Run(opts Options) error {
	app := NewApp(opts)
	defer app.Close()

	cfg := app.cfg
	if cfg.Content.Watch && cfg.Content.Path != "" {
		w, err := content.NewWatcher(cfg.Content.Path,
			content.WithOnReload(func(c *core.Corpus, err error) {
				app.deliver(reloadMsg{corpus: c, err: err})
			}),
			content.WithOnError(func(err error) {
				app.log.Warn("content watch", "error", err)
				app.deliver(reloadMsg{err: err})
			}),
		)
		if err != nil {
			return err
		}
		if err := w.Start(context.Background()); err != nil {
			return err
		}
		defer w.Stop()
		app.log.Info("watching content", "path", w.Path())
	}

	model := NewModel(app, opts.Corpus, opts.StartTopic)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.closePlayers()
	}
	return err
}
