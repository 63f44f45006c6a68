package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/tessro/stepwise/internal/config"
)

// configAnswers holds the form's raw field values.
type configAnswers struct {
	contentPath  string
	watch        bool
	explanation  string
	code         string
	theme        string
	wordWrap     string
	conceptCount bool
	history      bool
}

func answersFrom(cfg *config.Config) configAnswers {
	return configAnswers{
		contentPath:  cfg.Content.Path,
		watch:        cfg.Content.Watch,
		explanation:  strconv.Itoa(cfg.Player.ExplanationInterval),
		code:         strconv.Itoa(cfg.Player.CodeInterval),
		theme:        cfg.TUI.Theme,
		wordWrap:     strconv.Itoa(cfg.TUI.WordWrap),
		conceptCount: cfg.Search.MatchConceptCount,
		history:      cfg.History.IsEnabled(),
	}
}

// apply copies the answers into cfg.
func (a configAnswers) apply(cfg *config.Config) error {
	explanation, err := positiveInt(a.explanation)
	if err != nil {
		return fmt.Errorf("explanation interval: %w", err)
	}
	code, err := positiveInt(a.code)
	if err != nil {
		return fmt.Errorf("code interval: %w", err)
	}
	wrap, err := positiveInt(a.wordWrap)
	if err != nil {
		return fmt.Errorf("word wrap: %w", err)
	}

	cfg.Content.Path = a.contentPath
	cfg.Content.Watch = a.watch && a.contentPath != ""
	cfg.Player.ExplanationInterval = explanation
	cfg.Player.CodeInterval = code
	cfg.TUI.Theme = a.theme
	cfg.TUI.WordWrap = wrap
	cfg.Search.MatchConceptCount = a.conceptCount
	enabled := a.history
	cfg.History.Enabled = &enabled
	return nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func validatePositive(s string) error {
	_, err := positiveInt(s)
	return err
}

// RunConfigForm walks the user through the main settings, starting from
// cfg's current values, and writes the answers back into cfg.
func RunConfigForm(cfg *config.Config) error {
	a := answersFrom(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Content path").
				Description("Directory or file of topic YAML/JSON. Leave empty for the built-in topics.").
				Value(&a.contentPath),
			huh.NewConfirm().
				Title("Reload content when files change?").
				Value(&a.watch),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Explanation auto-play interval (ms)").
				Validate(validatePositive).
				Value(&a.explanation),
			huh.NewInput().
				Title("Code walkthrough auto-play interval (ms)").
				Validate(validatePositive).
				Value(&a.code),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions("auto", "dark", "light", "notty")...).
				Value(&a.theme),
			huh.NewInput().
				Title("Word wrap").
				Validate(validatePositive).
				Value(&a.wordWrap),
			huh.NewConfirm().
				Title("Match concept counts in search?").
				Value(&a.conceptCount),
			huh.NewConfirm().
				Title("Remember recently viewed topics?").
				Value(&a.history),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("config form cancelled: %w", err)
	}
	return a.apply(cfg)
}
