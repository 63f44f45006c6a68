package wizard

import (
	"os"

	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/search"
	"golang.org/x/term"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled bool
	corpus  *core.Corpus
	opts    []search.Option
}

// NewInteractive creates a new interactive handler over a corpus.
func NewInteractive(corpus *core.Corpus, opts ...search.Option) *Interactive {
	return &Interactive{
		enabled: true,
		corpus:  corpus,
		opts:    opts,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && IsTerminal()
}

// PromptTopic launches the topic picker if interactive mode is available.
// Returns the selected topic, or nil if cancelled or not interactive.
func (i *Interactive) PromptTopic() (*core.Topic, error) {
	if !i.CanInteract() || i.corpus == nil || i.corpus.IsEmpty() {
		return nil, nil
	}
	return RunTopicPicker(i.corpus.Topics())
}

// PromptSearch launches the search wizard if interactive mode is available.
// Returns the selected topic, or nil if cancelled or not interactive.
func (i *Interactive) PromptSearch() (*core.Topic, error) {
	if !i.CanInteract() || i.corpus == nil {
		return nil, nil
	}
	return RunSearch(i.corpus, i.opts...)
}

// NeedsTopic returns true if a topic argument is required but missing.
func NeedsTopic(args []string) bool {
	return len(args) == 0
}
